package constants

const (
	StatusOK        = "ok"
	StatusRecording = "recording"
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// Wizard adımları
const (
	StepIntro   = "intro"
	StepGuide   = "guide"
	StepCapture = "capture"
	StepPreview = "preview"
	StepInfo    = "info"
	StepConfirm = "confirm"
	StepThanks  = "thanks"
)

const (
	ModeRecord = "record"
	ModeUpload = "upload"
)

const (
	MaxNoteLength = 240

	// Öneri limitleri (saniye), engel değil sadece uyarı
	RecommendedMinDuration = 30
	RecommendedMaxDuration = 120
)
