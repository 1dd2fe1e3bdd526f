package clipboard

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// File reads a payload saved to disk. The MIME type follows the extension
// unless MIME is set: .html/.htm are HTML, .xlsx a workbook, anything else text.
type File struct {
	Path string
	MIME string
}

// Read implements Reader.
func (f File) Read(ctx context.Context) (models.Payload, error) {
	data, err := readContext(ctx, func() (string, error) {
		b, err := os.ReadFile(f.Path)
		return string(b), err
	})
	if err != nil {
		return nil, classify(err)
	}
	return models.Payload{f.mime(): data}, nil
}

func (f File) mime() string {
	if f.MIME != "" {
		return f.MIME
	}
	return MIMEForExtension(filepath.Ext(f.Path))
}

// MIMEForExtension maps a file extension onto a payload MIME type.
func MIMEForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		return models.MIMEHTML
	case ".xlsx":
		return models.MIMEWorkbook
	default:
		return models.MIMEText
	}
}

// Stream reads a whole stream, such as stdin, as a payload of the given MIME type.
type Stream struct {
	R    io.Reader
	MIME string
}

// Read implements Reader.
func (s Stream) Read(ctx context.Context) (models.Payload, error) {
	data, err := readContext(ctx, func() (string, error) {
		b, err := io.ReadAll(s.R)
		return string(b), err
	})
	if err != nil {
		return nil, classify(err)
	}
	if data == "" {
		return nil, ErrUnreadable
	}
	mime := s.MIME
	if mime == "" {
		mime = models.MIMEText
	}
	return models.Payload{mime: data}, nil
}
