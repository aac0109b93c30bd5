package dto

// ---------------- Requests ----------------

type CreateAnnouncementRequest struct {
	Title          string `json:"title" validate:"required,max=200"`
	Content        string `json:"content" validate:"omitempty,max=10000"`
	Priority       string `json:"priority" validate:"omitempty,max=20"`
	TargetAudience string `json:"targetAudience" validate:"omitempty,max=100"`
}

// ---------------- Responses ----------------

type AnnouncementResponse struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	TargetAudience string `json:"targetAudience"`
	CreatedAt      string `json:"createdAt"`
	PublishedAt    string `json:"publishedAt,omitempty"`
}
