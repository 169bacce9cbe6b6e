package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		def      string
		want     string
	}{
		{name: "plain mp4", filename: "clip.mp4", def: "mp4", want: "mp4"},
		{name: "uppercase extension", filename: "FERIAS.MOV", def: "mp4", want: "mov"},
		{name: "no extension", filename: "recording", def: "mp4", want: "mp4"},
		{name: "trailing dot", filename: "clip.", def: "webm", want: "webm"},
		{name: "multiple dots", filename: "my.holiday.webm", def: "mp4", want: "webm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionOrDefault(tt.filename, tt.def))
		})
	}
}

func TestStoragePathShape(t *testing.T) {
	path := StoragePath("sess-42", "mp4")
	assert.Regexp(t, `^sess-42/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.mp4$`, path)

	// Her çağrı yeni bir obje adı üretir
	assert.NotEqual(t, path, StoragePath("sess-42", "mp4"))
}

func TestExtensionForContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{contentType: "video/webm", want: "webm"},
		{contentType: "video/webm;codecs=vp9,opus", want: "webm"},
		{contentType: "video/quicktime", want: "mov"},
		{contentType: "video/x-matroska", want: "mkv"},
		{contentType: "video/mp4", want: "mp4"},
		{contentType: "", want: "mp4"},
		{contentType: "application/octet-stream", want: "mp4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtensionForContentType(tt.contentType), tt.contentType)
	}
}
