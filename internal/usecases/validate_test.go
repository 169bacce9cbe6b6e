package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-guestbook/internal/domain/entities"
	"video-guestbook/pkg/errors"
)

type stubProber struct {
	meta *entities.VideoMeta
	err  error
}

func (p *stubProber) Probe(_ context.Context, _ string) (*entities.VideoMeta, error) {
	return p.meta, p.err
}

func TestValidateAcceptancePolicy(t *testing.T) {
	const maxSize = 80 * 1024 * 1024

	tests := []struct {
		name           string
		candidate      *entities.Draft
		probe          stubProber
		wantCode       string
		wantAdvisories []string
	}{
		{
			name:      "non-video declared type",
			candidate: &entities.Draft{ContentType: "image/png", Size: 100},
			wantCode:  "invalid_type",
		},
		{
			name:      "over the size limit",
			candidate: &entities.Draft{ContentType: "video/mp4", Size: maxSize + 1},
			wantCode:  "too_large",
		},
		{
			name:      "probe failure",
			candidate: &entities.Draft{ContentType: "video/mp4", Size: 100},
			probe:     stubProber{err: fmt.Errorf("no video stream")},
			wantCode:  "probe_failed",
		},
		{
			name:      "ideal clip passes clean",
			candidate: &entities.Draft{ContentType: "video/mp4", Size: 100},
			probe:     stubProber{meta: &entities.VideoMeta{Duration: 60, IsVertical: true}},
		},
		{
			name:      "exactly at the size limit",
			candidate: &entities.Draft{ContentType: "video/mp4", Size: maxSize},
			probe:     stubProber{meta: &entities.VideoMeta{Duration: 60}},
		},
		{
			name:           "short clip gets advisory",
			candidate:      &entities.Draft{ContentType: "video/mp4", Size: 100},
			probe:          stubProber{meta: &entities.VideoMeta{Duration: 12}},
			wantAdvisories: []string{AdvisoryDuration},
		},
		{
			name:           "long clip gets advisory",
			candidate:      &entities.Draft{ContentType: "video/mp4", Size: 100},
			probe:          stubProber{meta: &entities.VideoMeta{Duration: 180.2}},
			wantAdvisories: []string{AdvisoryDuration},
		},
		{
			name:           "29.6s is still below the window",
			candidate:      &entities.Draft{ContentType: "video/mp4", Size: 100},
			probe:          stubProber{meta: &entities.VideoMeta{Duration: 29.6}},
			wantAdvisories: []string{AdvisoryDuration},
		},
		{
			name:           "120.4s is already past the window",
			candidate:      &entities.Draft{ContentType: "video/mp4", Size: 100},
			probe:          stubProber{meta: &entities.VideoMeta{Duration: 120.4}},
			wantAdvisories: []string{AdvisoryDuration},
		},
		{
			name:      "window bounds are inclusive",
			candidate: &entities.Draft{ContentType: "video/mp4", Size: 100},
			probe:     stubProber{meta: &entities.VideoMeta{Duration: 120}},
		},
		{
			name:      "horizontal video is not rejected here",
			candidate: &entities.Draft{ContentType: "video/quicktime", Size: 100},
			probe:     stubProber{meta: &entities.VideoMeta{Duration: 60, IsVertical: false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(maxSize, &tt.probe)
			result, err := v.Validate(context.Background(), tt.candidate)

			if tt.wantCode != "" {
				require.Error(t, err)
				var se *errors.SubmissionError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.wantCode, se.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.probe.meta, result.Meta)
			assert.Equal(t, tt.wantAdvisories, result.Advisories)
		})
	}
}
