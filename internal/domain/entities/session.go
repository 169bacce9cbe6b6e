package entities

import "time"

// VideoMeta holds the values derived by probing. Downstream steps trust
// them verbatim; nothing re-inspects pixel data.
type VideoMeta struct {
	Duration        float64 `json:"duration"`
	Width           int64   `json:"width"`
	Height          int64   `json:"height"`
	IsVertical      bool    `json:"is_vertical"`
	IsIdealVertical bool    `json:"is_ideal_vertical"`
}

// Draft is the captured-but-not-yet-submitted video. It owns the temp file
// at FilePath until the wizard submits, retries or resets.
type Draft struct {
	FilePath    string     `json:"file_path"`
	FileName    string     `json:"file_name"`
	ContentType string     `json:"content_type"`
	Size        int64      `json:"size"`
	Meta        *VideoMeta `json:"meta,omitempty"`
}

// WizardSession is one guest's flow state. It lives in the session store
// for the duration of the visit; server-side records are only created at
// submit time.
type WizardSession struct {
	ID          string `json:"id"`
	Step        string `json:"step"`
	CaptureMode string `json:"capture_mode"`
	UserAgent   string `json:"user_agent"`

	Draft *Draft `json:"draft,omitempty"`

	// Name/relation/note survive a capture retry; the ack does not.
	Name            string `json:"name"`
	Relation        string `json:"relation"`
	Note            string `json:"note"`
	AgreeHorizontal bool   `json:"agree_horizontal"`

	Advisories []string `json:"advisories,omitempty"`

	OutroIndex     int  `json:"outro_index"`
	ShowOutroVideo bool `json:"show_outro_video"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
