package usecases

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/domain/repositories"
	"video-guestbook/internal/pkg/logger"
	consts "video-guestbook/pkg/constants"
	"video-guestbook/pkg/errors"
)

// WizardService drives the guest flow:
//
//	intro → guide → capture → preview → info → confirm → thanks
//
// with the retry edge preview→capture and the backward edges guide→intro,
// info→preview, confirm→info. Capture mode is picked at intro→guide and
// kept until a capture lands back in preview. Every mutation persists the
// session before returning.
type WizardService interface {
	StartSession(ctx context.Context, sessionID, userAgent string) (*entities.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	ChooseMode(ctx context.Context, sessionID, mode string) (*entities.WizardSession, error)
	BeginCapture(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*entities.WizardSession, error)

	StartRecording(ctx context.Context, sessionID, contentType string) error
	AppendChunk(ctx context.Context, sessionID string, chunkIndex int, fileHeader *multipart.FileHeader) error
	StopRecording(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	AttachUpload(ctx context.Context, sessionID string, fileHeader *multipart.FileHeader) (*entities.WizardSession, error)
	RecordingStatus(sessionID string) (elapsedSeconds, chunks int)

	RetryCapture(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	UpdatePreview(ctx context.Context, sessionID string, note *string, agreeHorizontal *bool) (*entities.WizardSession, error)
	ContinueToInfo(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	SaveInfo(ctx context.Context, sessionID, name, relation string) (*entities.WizardSession, error)
	Submit(ctx context.Context, sessionID string) (*entities.WizardSession, error)

	OutroPrev(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	OutroNext(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	OutroFinish(ctx context.Context, sessionID string) (*entities.WizardSession, error)
	OutroCloseVideo(ctx context.Context, sessionID string) (*entities.WizardSession, error)

	Reset(ctx context.Context, sessionID string) error
}

type wizardService struct {
	store     repositories.SessionStore
	files     repositories.CaptureFileRepository
	capture   CaptureService
	validator Validator
	submitter Submitter
	log       *logger.Logger
}

func NewWizardService(
	store repositories.SessionStore,
	files repositories.CaptureFileRepository,
	capture CaptureService,
	validator Validator,
	submitter Submitter,
	log *logger.Logger,
) WizardService {
	return &wizardService{
		store:     store,
		files:     files,
		capture:   capture,
		validator: validator,
		submitter: submitter,
		log:       log.With("service", "WizardService"),
	}
}

func (s *wizardService) StartSession(ctx context.Context, sessionID, userAgent string) (*entities.WizardSession, error) {
	// Oturum kimliği dosya yolu ve obje anahtarı olarak kullanılır,
	// UUID olmayan istemci değerleri kabul edilmez
	if _, err := uuid.Parse(sessionID); err != nil {
		sessionID = ""
	}
	if sessionID != "" {
		session, err := s.store.Get(ctx, sessionID)
		if err != nil {
			return nil, errors.ErrInternal(err)
		}
		if session != nil {
			return session, nil
		}
	}
	// Oturum yoksa yenisini oluştur
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	now := time.Now().UTC()
	session := &entities.WizardSession{
		ID:        sessionID,
		Step:      consts.StepIntro,
		UserAgent: userAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, errors.ErrInternal(err)
	}
	s.log.Info("session started", "session_id", sessionID)
	return session, nil
}

func (s *wizardService) GetSession(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	return s.load(ctx, sessionID)
}

func (s *wizardService) ChooseMode(ctx context.Context, sessionID, mode string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepIntro); err != nil {
		return nil, err
	}
	if mode != consts.ModeRecord && mode != consts.ModeUpload {
		return nil, errors.ErrInvalidStep(nil)
	}
	session.CaptureMode = mode
	session.Step = consts.StepGuide
	return s.save(ctx, session)
}

func (s *wizardService) BeginCapture(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepGuide); err != nil {
		return nil, err
	}
	session.Step = consts.StepCapture
	return s.save(ctx, session)
}

func (s *wizardService) Back(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Step {
	case consts.StepGuide:
		session.Step = consts.StepIntro
	case consts.StepCapture:
		// Kamera kaynakları bırakılır
		s.capture.Abort(session.ID)
		session.Step = consts.StepIntro
	case consts.StepInfo:
		session.Step = consts.StepPreview
	case consts.StepConfirm:
		session.Step = consts.StepInfo
	default:
		return nil, errors.ErrInvalidStep(nil)
	}
	return s.save(ctx, session)
}

func (s *wizardService) StartRecording(ctx context.Context, sessionID, contentType string) error {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := requireStep(session, consts.StepCapture); err != nil {
		return err
	}
	if session.CaptureMode != consts.ModeRecord {
		return errors.ErrInvalidStep(nil)
	}
	return s.capture.StartRecording(sessionID, contentType)
}

func (s *wizardService) AppendChunk(ctx context.Context, sessionID string, chunkIndex int, fileHeader *multipart.FileHeader) error {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := requireStep(session, consts.StepCapture); err != nil {
		return err
	}
	return s.capture.AppendChunk(sessionID, chunkIndex, fileHeader)
}

func (s *wizardService) StopRecording(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepCapture); err != nil {
		return nil, err
	}
	draft, err := s.capture.StopRecording(sessionID)
	if err != nil {
		return nil, err
	}
	return s.attach(ctx, session, draft)
}

func (s *wizardService) AttachUpload(ctx context.Context, sessionID string, fileHeader *multipart.FileHeader) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepCapture); err != nil {
		return nil, err
	}
	draft, err := s.capture.AcceptUpload(sessionID, fileHeader)
	if err != nil {
		return nil, err
	}
	return s.attach(ctx, session, draft)
}

// attach validates a fresh candidate and moves capture→preview. On a
// validation failure the candidate file is removed and the session stays
// in capture with the error surfaced.
func (s *wizardService) attach(ctx context.Context, session *entities.WizardSession, draft *entities.Draft) (*entities.WizardSession, error) {
	// Önce eski taslağı bırak, retry'lar arasında birikme olmasın
	s.discardDraft(session)

	result, err := s.validator.Validate(ctx, draft)
	if err != nil {
		if removeErr := s.files.RemoveFile(draft.FilePath); removeErr != nil {
			s.log.Warn("could not remove rejected draft", "path", draft.FilePath, "error", removeErr)
		}
		if _, saveErr := s.save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return nil, err
	}

	draft.Meta = result.Meta
	session.Draft = draft
	session.Advisories = result.Advisories
	session.AgreeHorizontal = false
	session.Step = consts.StepPreview
	return s.save(ctx, session)
}

func (s *wizardService) RecordingStatus(sessionID string) (int, int) {
	return s.capture.ElapsedSeconds(sessionID), s.capture.ChunkCount(sessionID)
}

func (s *wizardService) RetryCapture(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepPreview); err != nil {
		return nil, err
	}
	s.discardDraft(session)
	session.Step = consts.StepCapture
	return s.save(ctx, session)
}

func (s *wizardService) UpdatePreview(ctx context.Context, sessionID string, note *string, agreeHorizontal *bool) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepPreview); err != nil {
		return nil, err
	}
	if note != nil {
		session.Note = *note
	}
	if agreeHorizontal != nil {
		session.AgreeHorizontal = *agreeHorizontal
	}
	return s.save(ctx, session)
}

func (s *wizardService) ContinueToInfo(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepPreview); err != nil {
		return nil, err
	}
	// Yatay video onayı burada değil, submit'te kontrol edilir
	session.Step = consts.StepInfo
	return s.save(ctx, session)
}

func (s *wizardService) SaveInfo(ctx context.Context, sessionID, name, relation string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepInfo); err != nil {
		return nil, err
	}
	// İsim zorunluluğu submit aşamasında denetlenir
	session.Name = name
	session.Relation = relation
	session.Step = consts.StepConfirm
	return s.save(ctx, session)
}

func (s *wizardService) Submit(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepConfirm); err != nil {
		return nil, err
	}

	if err := s.submitter.Submit(ctx, session); err != nil {
		if se, ok := err.(*errors.SubmissionError); ok && se.Code == "missing_name" {
			// İsim eksikse kullanıcı info adımına geri yönlendirilir
			session.Step = consts.StepInfo
			if _, saveErr := s.save(ctx, session); saveErr != nil {
				return nil, saveErr
			}
		}
		return nil, err
	}

	s.discardDraft(session)
	if err := s.files.CleanupSession(session.ID); err != nil {
		s.log.Warn("could not clean capture dir", "session_id", session.ID, "error", err)
	}
	session.Step = consts.StepThanks
	session.OutroIndex = 0
	session.ShowOutroVideo = false
	return s.save(ctx, session)
}

func (s *wizardService) OutroPrev(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	return s.outro(ctx, sessionID, func(session *entities.WizardSession) {
		if session.OutroIndex > 0 {
			session.OutroIndex--
		}
	})
}

func (s *wizardService) OutroNext(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	return s.outro(ctx, sessionID, func(session *entities.WizardSession) {
		if session.OutroIndex < len(OutroSlides)-1 {
			session.OutroIndex++
		}
	})
}

func (s *wizardService) OutroFinish(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	return s.outro(ctx, sessionID, func(session *entities.WizardSession) {
		session.ShowOutroVideo = true
	})
}

func (s *wizardService) OutroCloseVideo(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	return s.outro(ctx, sessionID, func(session *entities.WizardSession) {
		session.ShowOutroVideo = false
	})
}

func (s *wizardService) outro(ctx context.Context, sessionID string, mutate func(*entities.WizardSession)) (*entities.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireStep(session, consts.StepThanks); err != nil {
		return nil, err
	}
	mutate(session)
	return s.save(ctx, session)
}

func (s *wizardService) Reset(ctx context.Context, sessionID string) error {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	s.capture.Abort(session.ID)
	s.discardDraft(session)
	if err := s.files.CleanupSession(session.ID); err != nil {
		s.log.Warn("could not clean capture dir", "session_id", session.ID, "error", err)
	}
	return s.store.Delete(ctx, session.ID)
}

func (s *wizardService) discardDraft(session *entities.WizardSession) {
	if session.Draft == nil {
		return
	}
	if err := s.files.RemoveFile(session.Draft.FilePath); err != nil {
		s.log.Warn("could not remove draft file", "path", session.Draft.FilePath, "error", err)
	}
	session.Draft = nil
	session.Advisories = nil
	session.AgreeHorizontal = false
}

func (s *wizardService) load(ctx context.Context, sessionID string) (*entities.WizardSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	if session == nil {
		return nil, errors.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (s *wizardService) save(ctx context.Context, session *entities.WizardSession) (*entities.WizardSession, error) {
	session.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, errors.ErrInternal(err)
	}
	return session, nil
}

func requireStep(session *entities.WizardSession, steps ...string) error {
	for _, step := range steps {
		if session.Step == step {
			return nil
		}
	}
	return errors.ErrInvalidStep(nil)
}
