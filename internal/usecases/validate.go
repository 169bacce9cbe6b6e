package usecases

import (
	"context"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/internal/infrastructure/probe"
	consts "video-guestbook/pkg/constants"
	"video-guestbook/pkg/errors"
	"video-guestbook/pkg/helper"
)

// AdvisoryDuration is the non-blocking notice for clips outside the
// recommended window. It never rejects a submission.
const AdvisoryDuration = "duration_recommendation"

type ValidationResult struct {
	Meta       *entities.VideoMeta
	Advisories []string
}

// Validator applies the acceptance policy to a candidate video: declared
// type, then size, then probing. Orientation and duration only produce
// advisories; guests are nudged, not blocked.
type Validator interface {
	Validate(ctx context.Context, candidate *entities.Draft) (*ValidationResult, error)
}

type validator struct {
	maxFileSize int64
	prober      probe.Prober
}

func NewValidator(maxFileSize int64, prober probe.Prober) Validator {
	return &validator{
		maxFileSize: maxFileSize,
		prober:      prober,
	}
}

func (v *validator) Validate(ctx context.Context, candidate *entities.Draft) (*ValidationResult, error) {
	if !helper.IsVideoType(candidate.ContentType) {
		return nil, errors.ErrInvalidType(nil)
	}
	if candidate.Size > v.maxFileSize {
		return nil, errors.ErrTooLarge(nil)
	}

	meta, err := v.prober.Probe(ctx, candidate.FilePath)
	if err != nil {
		return nil, errors.ErrProbeFailed(err)
	}

	result := &ValidationResult{Meta: meta}
	if meta.Duration < consts.RecommendedMinDuration || meta.Duration > consts.RecommendedMaxDuration {
		result.Advisories = append(result.Advisories, AdvisoryDuration)
	}
	return result, nil
}
