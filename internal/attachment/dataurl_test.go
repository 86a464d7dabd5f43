package attachment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcarden/taskdesk/internal/attachment"
)

func TestEncodeUsesExtensionMIME(t *testing.T) {
	att, err := attachment.Encode("notes.txt", strings.NewReader("hello world"))
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", att.Name)
	assert.True(t, strings.HasPrefix(att.Data, "data:text/plain"))
	assert.Contains(t, att.Data, ";base64,")
}

func TestEncodeSniffsUnknownExtension(t *testing.T) {
	// PNG magic bytes with no usable extension.
	png := "\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 16)
	att, err := attachment.Encode("snapshot.bin42", strings.NewReader(png))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(att.Data, "data:image/png;base64,"), att.Data)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	content := "some\x00binary\xffcontent"
	att, err := attachment.Encode("blob.bin", strings.NewReader(content))
	require.NoError(t, err)

	mimeType, raw, err := attachment.Decode(att.Data)
	require.NoError(t, err)
	assert.NotEmpty(t, mimeType)
	assert.Equal(t, []byte(content), raw)
}

func TestDecodeRejectsNonDataURL(t *testing.T) {
	_, _, err := attachment.Decode("https://example.com/file.txt")
	require.Error(t, err)

	_, _, err = attachment.Decode("data:text/plain;base64")
	require.Error(t, err)
}
