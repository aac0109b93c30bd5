package handlers

import (
	"net/http"

	"campus_backend/internal/services"
	"campus_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register/student", h.RegisterStudent)
	r.POST("/login/student", h.LoginStudent)
	r.POST("/login/pr-admin", h.LoginPrAdmin)
}

func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	var req dto.AuthRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RegisterStudent(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registration submitted. Await admin approval."})
}

func (h *AuthHandler) LoginStudent(c *gin.Context) {
	var req dto.AuthRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginStudent(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) LoginPrAdmin(c *gin.Context) {
	var req dto.AuthRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.LoginPrAdmin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
