package handlers

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"video-guestbook/internal/domain/dto"
	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/usecases"
	consts "video-guestbook/pkg/constants"
	"video-guestbook/pkg/errors"
)

type WizardHandler struct {
	wizard      usecases.WizardService
	suggestions *usecases.SuggestionRotator
	validate    *validator.Validate
}

func NewWizardHandler(wizard usecases.WizardService, suggestions *usecases.SuggestionRotator) *WizardHandler {
	return &WizardHandler{
		wizard:      wizard,
		suggestions: suggestions,
		validate:    validator.New(),
	}
}

// StartSession
//
// @Summary      Start or resume a wizard session
// @Tags         Wizard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.StartSessionRequestDTO false "Existing session id, if any"
// @Success      200      {object}  dto.SessionResponseDTO
// @Router       /wizard/session [post]
func (h *WizardHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequestDTO
	_ = c.BodyParser(&req)
	if req.SessionID == "" {
		req.SessionID = c.Get("X-Session-ID")
	}

	session, err := h.wizard.StartSession(c.Context(), req.SessionID, c.Get("User-Agent"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.wizard.GetSession(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

// ChooseMode
//
// @Summary      Pick record or upload and move to the guide step
// @Tags         Wizard
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                   true "Session ID"
// @Param        request    body      dto.ChooseModeRequestDTO true "Capture mode"
// @Success      200        {object}  dto.SessionResponseDTO
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /wizard/{sessionID}/mode [post]
func (h *WizardHandler) ChooseMode(c *fiber.Ctx) error {
	var req dto.ChooseModeRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidStep(err))
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidStep(err))
	}

	session, err := h.wizard.ChooseMode(c.Context(), c.Params("sessionID"), req.Mode)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) BeginCapture(c *fiber.Ctx) error {
	session, err := h.wizard.BeginCapture(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) Back(c *fiber.Ctx) error {
	session, err := h.wizard.Back(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

// StartRecording
//
// @Summary      Begin a live recording
// @Tags         Capture
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string                       true  "Session ID"
// @Param        request    body      dto.StartRecordingRequestDTO false "Negotiated recorder media type"
// @Success      200        {object}  dto.RecordingStatusResponseDTO
// @Router       /wizard/{sessionID}/recording/start [post]
func (h *WizardHandler) StartRecording(c *fiber.Ctx) error {
	var req dto.StartRecordingRequestDTO
	_ = c.BodyParser(&req)

	if err := h.wizard.StartRecording(c.Context(), c.Params("sessionID"), req.ContentType); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.RecordingStatusResponseDTO{Status: consts.StatusRecording})
}

// AppendChunk
//
// @Summary      Append one recorder chunk
// @Tags         Capture
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID    path      string true "Session ID"
// @Param        chunk_index  formData  int    true "1-based chunk index"
// @Param        file         formData  file   true "Chunk payload"
// @Success      200          {object}  dto.RecordingStatusResponseDTO
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /wizard/{sessionID}/recording/chunk [post]
func (h *WizardHandler) AppendChunk(c *fiber.Ctx) error {
	chunkIndex, err := strconv.Atoi(c.FormValue("chunk_index"))
	if err != nil {
		return errors.HandleError(c, errors.ErrInvalidChunk(err))
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.HandleError(c, errors.ErrInvalidChunk(err))
	}

	sessionID := c.Params("sessionID")
	if err := h.wizard.AppendChunk(c.Context(), sessionID, chunkIndex, fileHeader); err != nil {
		return errors.HandleError(c, err)
	}

	elapsed, chunks := h.wizard.RecordingStatus(sessionID)
	return c.JSON(dto.RecordingStatusResponseDTO{Status: consts.StatusRecording, ElapsedSeconds: elapsed, Chunks: chunks})
}

func (h *WizardHandler) StopRecording(c *fiber.Ctx) error {
	session, err := h.wizard.StopRecording(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) RecordingStatus(c *fiber.Ctx) error {
	elapsed, chunks := h.wizard.RecordingStatus(c.Params("sessionID"))
	return c.JSON(dto.RecordingStatusResponseDTO{Status: consts.StatusRecording, ElapsedSeconds: elapsed, Chunks: chunks})
}

// UploadVideo
//
// @Summary      Attach a gallery-picked video
// @Tags         Capture
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionID  path      string true "Session ID"
// @Param        file       formData  file   true "Video file"
// @Success      200        {object}  dto.SessionResponseDTO
// @Failure      413        {object}  dto.ErrorResponse
// @Failure      422        {object}  dto.ErrorResponse
// @Router       /wizard/{sessionID}/upload [post]
func (h *WizardHandler) UploadVideo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.HandleError(c, errors.ErrInvalidType(err))
	}

	session, err := h.wizard.AttachUpload(c.Context(), c.Params("sessionID"), fileHeader)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) RetryCapture(c *fiber.Ctx) error {
	session, err := h.wizard.RetryCapture(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) UpdatePreview(c *fiber.Ctx) error {
	var req dto.PreviewDetailsRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidStep(err))
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidStep(err))
	}

	session, err := h.wizard.UpdatePreview(c.Context(), c.Params("sessionID"), req.Note, req.AgreeHorizontal)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) ContinueToInfo(c *fiber.Ctx) error {
	session, err := h.wizard.ContinueToInfo(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) SaveInfo(c *fiber.Ctx) error {
	var req dto.InfoRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidStep(err))
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.HandleError(c, errors.ErrInvalidStep(err))
	}

	session, err := h.wizard.SaveInfo(c.Context(), c.Params("sessionID"), req.Name, req.Relation)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

// Submit
//
// @Summary      Persist the finished submission
// @Tags         Wizard
// @Produce      json
// @Param        sessionID  path      string true "Session ID"
// @Success      200        {object}  dto.SessionResponseDTO
// @Failure      400        {object}  dto.ErrorResponse "Missing name or unconfirmed horizontal"
// @Failure      502        {object}  dto.ErrorResponse "Backend write failed"
// @Router       /wizard/{sessionID}/submit [post]
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	session, err := h.wizard.Submit(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) OutroPrev(c *fiber.Ctx) error   { return h.outro(c, h.wizard.OutroPrev) }
func (h *WizardHandler) OutroNext(c *fiber.Ctx) error   { return h.outro(c, h.wizard.OutroNext) }
func (h *WizardHandler) OutroFinish(c *fiber.Ctx) error { return h.outro(c, h.wizard.OutroFinish) }
func (h *WizardHandler) OutroClose(c *fiber.Ctx) error  { return h.outro(c, h.wizard.OutroCloseVideo) }

func (h *WizardHandler) outro(c *fiber.Ctx, op func(ctx context.Context, sessionID string) (*entities.WizardSession, error)) error {
	session, err := op(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(toSessionResponse(session))
}

func (h *WizardHandler) Reset(c *fiber.Ctx) error {
	if err := h.wizard.Reset(c.Context(), c.Params("sessionID")); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"status": consts.StatusOK})
}

// Guide content

func (h *WizardHandler) GuideQuestion(c *fiber.Ctx) error {
	current := c.Query("current")
	var question string
	if current == "" {
		question = usecases.RandomQuestion()
	} else {
		question = usecases.AnotherQuestion(current)
	}
	return c.JSON(dto.GuideResponseDTO{Question: question, Suggestion: h.suggestions.Current()})
}

func (h *WizardHandler) OutroSlides(c *fiber.Ctx) error {
	session, err := h.wizard.GetSession(c.Context(), c.Params("sessionID"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.OutroResponseDTO{
		Slides:         usecases.OutroSlides,
		ActiveIndex:    session.OutroIndex,
		ShowOutroVideo: session.ShowOutroVideo,
	})
}

func toSessionResponse(session *entities.WizardSession) dto.SessionResponseDTO {
	resp := dto.SessionResponseDTO{
		SessionID:      session.ID,
		Step:           session.Step,
		CaptureMode:    session.CaptureMode,
		Note:           session.Note,
		Name:           session.Name,
		Relation:       session.Relation,
		Advisories:     session.Advisories,
		OutroIndex:     session.OutroIndex,
		ShowOutroVideo: session.ShowOutroVideo,
	}
	if session.Draft != nil {
		resp.Meta = session.Draft.Meta
		resp.FileName = session.Draft.FileName
	}
	return resp
}
