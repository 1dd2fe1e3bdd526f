// Package clipboard provides sources of clipboard payloads for paste-to-fill.
package clipboard

import (
	"context"
	"errors"
	"io/fs"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// ErrPermissionDenied indicates the platform refused access to the clipboard.
var ErrPermissionDenied = errors.New("clipboard permission denied")

// ErrUnreadable indicates the clipboard could not be read or held nothing usable.
var ErrUnreadable = errors.New("clipboard unreadable")

// Reader reads the current clipboard content.
type Reader interface {
	Read(ctx context.Context) (models.Payload, error)
}

// classify maps platform errors onto ErrPermissionDenied or ErrUnreadable.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrUnreadable):
		return err
	case errors.Is(err, fs.ErrPermission):
		return errors.Join(ErrPermissionDenied, err)
	default:
		return errors.Join(ErrUnreadable, err)
	}
}

// readContext runs a blocking read and gives up when ctx is done.
func readContext(ctx context.Context, read func() (string, error)) (string, error) {
	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := read()
		ch <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.text, r.err
	}
}

// Static returns a fixed payload or error. It backs stdin input and tests.
type Static struct {
	Payload models.Payload
	Err     error
}

// Read implements Reader.
func (s Static) Read(ctx context.Context) (models.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, classify(s.Err)
	}
	if len(s.Payload) == 0 {
		return nil, ErrUnreadable
	}
	return s.Payload, nil
}
