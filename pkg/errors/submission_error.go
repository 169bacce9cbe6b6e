package errors

import "fmt"

type SubmissionError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

var (
	ErrInvalidType = func(err error) *SubmissionError {
		return &SubmissionError{Code: "invalid_type", Message: "only video files are accepted", Err: err}
	}
	ErrTooLarge = func(err error) *SubmissionError {
		return &SubmissionError{Code: "too_large", Message: "video exceeds the size limit", Err: err}
	}
	ErrProbeFailed = func(err error) *SubmissionError {
		return &SubmissionError{Code: "probe_failed", Message: "video could not be read", Err: err}
	}
	ErrCaptureUnavailable = func(err error) *SubmissionError {
		return &SubmissionError{Code: "capture_unavailable", Message: "no active recording for this session", Err: err}
	}
	ErrInvalidChunk = func(err error) *SubmissionError {
		return &SubmissionError{Code: "invalid_chunk", Message: "chunk index out of order", Err: err}
	}
	ErrMissingDraft = func(err error) *SubmissionError {
		return &SubmissionError{Code: "missing_draft", Message: "no video attached to this session", Err: err}
	}
	ErrInvalidStep = func(err error) *SubmissionError {
		return &SubmissionError{Code: "invalid_step", Message: "action not allowed in the current step", Err: err}
	}
	ErrSessionNotFound = func(err error) *SubmissionError {
		return &SubmissionError{Code: "session_not_found", Message: "wizard session not found", Err: err}
	}
	ErrMissingName = func(err error) *SubmissionError {
		return &SubmissionError{Code: "missing_name", Message: "contributor name is required", Field: "name", Err: err}
	}
	ErrHorizontalNotConfirmed = func(err error) *SubmissionError {
		return &SubmissionError{Code: "horizontal_not_confirmed", Message: "horizontal video needs explicit confirmation", Field: "agree_horizontal", Err: err}
	}
	ErrContributorWrite = func(err error) *SubmissionError {
		return &SubmissionError{Code: "contributor_write_failed", Message: "could not save contributor", Err: err}
	}
	ErrUploadFailed = func(err error) *SubmissionError {
		return &SubmissionError{Code: "upload_failed", Message: "could not upload video", Err: err}
	}
	ErrVideoWrite = func(err error) *SubmissionError {
		return &SubmissionError{Code: "video_write_failed", Message: "could not save video record", Err: err}
	}
	ErrNoteWrite = func(err error) *SubmissionError {
		return &SubmissionError{Code: "note_write_failed", Message: "could not save note", Err: err}
	}
	ErrReadFailure = func(err error) *SubmissionError {
		return &SubmissionError{Code: "read_failed", Message: "could not load submissions", Err: err}
	}
	ErrNotFound = func(err error) *SubmissionError {
		return &SubmissionError{Code: "not_found", Message: "record not found", Err: err}
	}
	ErrInternal = func(err error) *SubmissionError {
		return &SubmissionError{Code: "internal_error", Message: "unexpected server error", Err: err}
	}
)
