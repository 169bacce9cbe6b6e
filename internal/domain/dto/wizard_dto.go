package dto

import "video-guestbook/internal/domain/entities"

type StartSessionRequestDTO struct {
	SessionID string `json:"session_id" form:"session_id"`
}

type ChooseModeRequestDTO struct {
	Mode string `json:"mode" form:"mode" validate:"required,oneof=record upload"`
}

type StartRecordingRequestDTO struct {
	ContentType string `json:"content_type" form:"content_type"`
}

type PreviewDetailsRequestDTO struct {
	Note            *string `json:"note" form:"note" validate:"omitempty,max=240"`
	AgreeHorizontal *bool   `json:"agree_horizontal" form:"agree_horizontal"`
}

// Name emptiness is deliberately not validated here; the submit pipeline
// enforces it and routes the user back to this step.
type InfoRequestDTO struct {
	Name     string `json:"name" form:"name" validate:"max=255"`
	Relation string `json:"relation" form:"relation" validate:"max=255"`
}

type SessionResponseDTO struct {
	SessionID      string              `json:"session_id"`
	Step           string              `json:"step"`
	CaptureMode    string              `json:"capture_mode,omitempty"`
	Meta           *entities.VideoMeta `json:"meta,omitempty"`
	FileName       string              `json:"file_name,omitempty"`
	Note           string              `json:"note,omitempty"`
	Name           string              `json:"name,omitempty"`
	Relation       string              `json:"relation,omitempty"`
	Advisories     []string            `json:"advisories,omitempty"`
	OutroIndex     int                 `json:"outro_index"`
	ShowOutroVideo bool                `json:"show_outro_video"`
}

type RecordingStatusResponseDTO struct {
	Status         string `json:"status"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	Chunks         int    `json:"chunks"`
}

type GuideResponseDTO struct {
	Question   string `json:"question"`
	Suggestion string `json:"suggestion,omitempty"`
}

type OutroResponseDTO struct {
	Slides         []entities.OutroSlide `json:"slides"`
	ActiveIndex    int                   `json:"active_index"`
	ShowOutroVideo bool                  `json:"show_outro_video"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
