package handlers

import (
	"net/http"

	"campus_backend/internal/middleware"
	"campus_backend/internal/models"
	"campus_backend/internal/services"
	"campus_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.RolePrAdmin, models.RoleMainAdmin))
	{
		admin.GET("/pending-students", h.PendingStudents)
		admin.GET("/all-students", h.AllStudents)
		admin.POST("/students/:id/approve", h.ApproveStudent)
		admin.POST("/students/:id/reject", h.RejectStudent)

		admin.POST("/pr-admins", h.CreatePrAdmin)
		admin.GET("/pr-admins", h.AllPrAdmins)
		admin.DELETE("/pr-admins/:id", h.DeletePrAdmin)
	}
}

func (h *AdminHandler) PendingStudents(c *gin.Context) {
	students, err := h.adminService.PendingStudents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *AdminHandler) AllStudents(c *gin.Context) {
	students, err := h.adminService.AllStudents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *AdminHandler) ApproveStudent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.ApproveStudent(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student approved"})
}

func (h *AdminHandler) RejectStudent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.RejectStudent(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student rejected"})
}

func (h *AdminHandler) CreatePrAdmin(c *gin.Context) {
	var req dto.CreatePrAdminRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	admin, err := h.adminService.CreatePrAdmin(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func (h *AdminHandler) AllPrAdmins(c *gin.Context) {
	admins, err := h.adminService.AllPrAdmins()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *AdminHandler) DeletePrAdmin(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.DeletePrAdmin(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "PR admin deleted"})
}
