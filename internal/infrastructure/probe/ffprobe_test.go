package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	cases := []struct {
		name          string
		out           string
		wantWidth     int64
		wantHeight    int64
		wantDuration  float64
		wantVertical  bool
		wantIdeal     bool
		wantErr       bool
	}{
		{
			name:         "vertical_phone_video",
			out:          "1080,1920\n45.120000\n",
			wantWidth:    1080,
			wantHeight:   1920,
			wantDuration: 45.12,
			wantVertical: true,
			wantIdeal:    true,
		},
		{
			name:         "horizontal_video",
			out:          "1920,1080\n90.000000\n",
			wantWidth:    1920,
			wantHeight:   1080,
			wantDuration: 90,
			wantVertical: false,
			wantIdeal:    false,
		},
		{
			name:         "square_counts_as_vertical_not_ideal",
			out:          "720,720\n12.5\n",
			wantWidth:    720,
			wantHeight:   720,
			wantDuration: 12.5,
			wantVertical: true,
			wantIdeal:    false,
		},
		{
			name:         "zero_width_never_ideal",
			out:          "0,1920\n30\n",
			wantWidth:    0,
			wantHeight:   1920,
			wantDuration: 30,
			wantVertical: true,
			wantIdeal:    false,
		},
		{
			name:         "tall_but_below_ratio",
			out:          "1080,1440\n60\n",
			wantWidth:    1080,
			wantHeight:   1440,
			wantDuration: 60,
			wantVertical: true,
			wantIdeal:    false,
		},
		{
			name:    "no_video_stream",
			out:     "33.4\n",
			wantErr: true,
		},
		{
			name:    "garbage",
			out:     "n/a,n/a\n",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta, err := parseOutput(tc.out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantWidth, meta.Width)
			assert.Equal(t, tc.wantHeight, meta.Height)
			assert.InDelta(t, tc.wantDuration, meta.Duration, 0.001)
			assert.Equal(t, tc.wantVertical, meta.IsVertical)
			assert.Equal(t, tc.wantIdeal, meta.IsIdealVertical)
			if meta.IsIdealVertical {
				assert.True(t, meta.IsVertical, "ideal implies vertical")
			}
		})
	}
}
