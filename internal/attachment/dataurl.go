// Package attachment encodes file content into the self-contained data-URL
// form attachments are persisted in.
package attachment

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mcarden/taskdesk/internal/model"
)

const prefix = "data:"

// Encode reads all bytes from r and returns an attachment whose Data field
// is a data:<mime>;base64,<payload> URL. The MIME type comes from the file
// extension, falling back to content sniffing.
func Encode(name string, r io.Reader) (model.Attachment, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return model.Attachment{}, fmt.Errorf("reading attachment %q: %w", name, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if mimeType == "" {
		mimeType = http.DetectContentType(raw)
	}

	data := prefix + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)
	return model.Attachment{Name: name, Data: data}, nil
}

// Decode extracts the MIME type and raw bytes from an encoded data URL.
func Decode(data string) (mimeType string, raw []byte, err error) {
	if !strings.HasPrefix(data, prefix) {
		return "", nil, fmt.Errorf("not a data URL")
	}

	rest := strings.TrimPrefix(data, prefix)
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL: missing payload")
	}

	mimeType = strings.TrimSuffix(meta, ";base64")
	raw, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding data URL payload: %w", err)
	}
	return mimeType, raw, nil
}
