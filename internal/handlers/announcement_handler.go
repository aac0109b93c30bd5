package handlers

import (
	"net/http"

	"campus_backend/internal/services"
	"campus_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	*BaseHandler
	announcementService services.AnnouncementService
}

func NewAnnouncementHandler(base *BaseHandler, announcementService services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		BaseHandler:         base,
		announcementService: announcementService,
	}
}

func (h *AnnouncementHandler) RegisterRoutes(r *gin.RouterGroup) {
	announcements := r.Group("/announcements")
	{
		announcements.GET("", h.GetPublishedAnnouncements)
		announcements.GET("/all", h.GetAllAnnouncements)
		announcements.POST("", h.CreateAnnouncement)
		announcements.PUT("/:id/publish", h.PublishAnnouncement)
		announcements.DELETE("/:id", h.DeleteAnnouncement)
	}
}

func (h *AnnouncementHandler) GetPublishedAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.GetPublishedAnnouncements()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (h *AnnouncementHandler) GetAllAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.GetAllAnnouncements()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) PublishAnnouncement(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	announcement, err := h.announcementService.PublishAnnouncement(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.announcementService.DeleteAnnouncement(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}
