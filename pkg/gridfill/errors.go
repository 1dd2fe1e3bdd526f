package gridfill

import (
	"errors"
	"fmt"
)

// ErrPasteInProgress indicates a paste was started while another is outstanding.
var ErrPasteInProgress = errors.New("paste already in progress")

// ErrStalePaste indicates the grid was torn down or refetched while the clipboard was read.
var ErrStalePaste = errors.New("paste result discarded: grid changed")

// ErrNoValidEntries indicates that no pasted key matched a row.
var ErrNoValidEntries = errors.New("no valid entries")

// Stages reported by PasteError.
const (
	StageRead  = "read"
	StageParse = "parse"
	StageMatch = "match"
	StageApply = "apply"
)

// PasteError represents a failed paste-to-fill step.
type PasteError struct {
	Stage string // "read", "parse", "match", "apply"
	Err   error
}

func (e *PasteError) Error() string {
	return fmt.Sprintf("paste failed at %s: %v", e.Stage, e.Err)
}

func (e *PasteError) Unwrap() error {
	return e.Err
}

// NewPasteError creates a new PasteError.
func NewPasteError(stage string, err error) *PasteError {
	return &PasteError{
		Stage: stage,
		Err:   err,
	}
}
