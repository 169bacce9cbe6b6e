package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"video-guestbook/internal/domain/entities"
)

// Prober derives duration and dimensions from a video file. This is the
// only place those values are computed; everything downstream trusts them.
type Prober interface {
	Probe(ctx context.Context, path string) (*entities.VideoMeta, error)
}

type FFProbe struct{}

func NewFFProbe() *FFProbe {
	return &FFProbe{}
}

func (p *FFProbe) Probe(ctx context.Context, path string) (*entities.VideoMeta, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe çalıştırılamadı: %w", err)
	}
	return parseOutput(string(out))
}

// parseOutput reads the two csv lines ffprobe emits: "width,height" for
// the stream entry and "duration" for the format entry.
func parseOutput(out string) (*entities.VideoMeta, error) {
	var width, height int64
	var duration float64
	var haveDims bool

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, ",") {
			parts := strings.Split(line, ",")
			if len(parts) < 2 {
				continue
			}
			w, errW := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
			h, errH := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
			if errW != nil || errH != nil {
				return nil, fmt.Errorf("unexpected ffprobe dimensions line %q", line)
			}
			width, height = w, h
			haveDims = true
			continue
		}
		if d, err := strconv.ParseFloat(line, 64); err == nil {
			duration = d
		}
	}

	if !haveDims {
		return nil, fmt.Errorf("ffprobe returned no video stream")
	}

	meta := &entities.VideoMeta{
		Duration:   duration,
		Width:      width,
		Height:     height,
		IsVertical: height >= width,
	}
	// Oran sadece width > 0 iken hesaplanır
	if width > 0 {
		meta.IsIdealVertical = float64(height)/float64(width) >= 1.5
	}
	return meta, nil
}
