package handlers

import (
	"net/http"

	"campus_backend/internal/services"
	"campus_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	*BaseHandler
	registrationService services.RegistrationService
}

func NewRegistrationHandler(base *BaseHandler, registrationService services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		BaseHandler:         base,
		registrationService: registrationService,
	}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.RouterGroup) {
	registrations := r.Group("/registrations")
	{
		registrations.GET("", h.GetAllRegistrations)
		registrations.POST("", h.CreateRegistration)
	}
}

func (h *RegistrationHandler) GetAllRegistrations(c *gin.Context) {
	registrations, err := h.registrationService.GetAllRegistrations()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, registrations)
}

func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var req dto.CreateRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	registration, err := h.registrationService.CreateRegistration(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registration)
}
