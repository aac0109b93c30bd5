package handlers

import (
	"net/http"

	"campus_backend/internal/services"
	"campus_backend/internal/services/dto"
	"campus_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.GET("", h.GetPublishedEvents)
		events.GET("/all", h.GetAllEvents)
		events.POST("", h.CreateEvent)
		events.PUT("/:id/publish", h.PublishEvent)
		events.POST("/:id/register", h.RegisterForEvent)
		events.POST("/:id/unregister", h.UnregisterFromEvent)
		events.DELETE("/:id", h.DeleteEvent)
	}
}

func (h *EventHandler) GetPublishedEvents(c *gin.Context) {
	events, err := h.eventService.GetPublishedEvents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventService.GetAllEvents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) PublishEvent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	event, err := h.eventService.PublishEvent(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// RegisterForEvent answers with plain-text bodies. Capacity and membership
// outcomes collapse to "Registration failed" on the client wire.
func (h *EventHandler) RegisterForEvent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.EventRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.eventService.RegisterForEvent(id, req.Email); err != nil {
		if apperrors.Is(err, apperrors.ErrEventFull) {
			c.String(http.StatusBadRequest, "Registration failed")
			return
		}
		h.HandleServiceError(c, err)
		return
	}
	c.String(http.StatusOK, "Registered successfully")
}

func (h *EventHandler) UnregisterFromEvent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.EventRegistrationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.eventService.UnregisterFromEvent(id, req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.String(http.StatusOK, "Unregistered successfully")
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.eventService.DeleteEvent(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
