package dto

import "time"

type AdminVideoDTO struct {
	ID          string    `json:"id"`
	StoragePath string    `json:"storage_path"`
	Duration    int       `json:"duration"`
	IsVertical  bool      `json:"is_vertical"`
	HasNote     bool      `json:"has_note"`
	CreatedAt   time.Time `json:"created_at"`
	Selected    bool      `json:"selected"`
	Favorite    bool      `json:"favorite"`
	Tags        []string  `json:"tags"`
	OrderIndex  *int      `json:"order_index"`
	SignedURL   string    `json:"signed_url,omitempty"`
	Contributor struct {
		Name     string `json:"name"`
		Relation string `json:"relation,omitempty"`
	} `json:"contributor"`
}

type AdminListResponseDTO struct {
	Videos   []AdminVideoDTO `json:"videos"`
	Total    int             `json:"total"`
	WithNote int             `json:"with_note"`
}

type ToggleTagRequestDTO struct {
	Tag string `json:"tag" form:"tag" validate:"required"`
}

type ToggleFlagRequestDTO struct {
	Field string `json:"field" form:"field" validate:"required,oneof=favorite selected"`
}

type ReorderRequestDTO struct {
	DraggingID string `json:"dragging_id" form:"dragging_id" validate:"required,uuid"`
	TargetID   string `json:"target_id" form:"target_id" validate:"required,uuid"`
}

// ReorderResultDTO is one item of the per-item result list a bulk reorder
// returns; callers decide what to do about partial failure.
type ReorderResultDTO struct {
	ID         string `json:"id"`
	OrderIndex int    `json:"order_index"`
	Error      string `json:"error,omitempty"`
}
