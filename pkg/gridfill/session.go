package gridfill

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/clipboard"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// Notifier shows a paste outcome to the user.
type Notifier func(message string, variant Variant)

// Session is the paste-to-fill control of one grid. It owns the grid's rows and
// swaps in the updated rows after a successful paste.
type Session struct {
	reader clipboard.Reader
	notify Notifier
	opts   Options

	pasting    atomic.Bool
	generation atomic.Uint64

	mu   sync.Mutex
	rows []models.Row
}

// NewSession creates a session over rows. notify may be nil.
func NewSession(reader clipboard.Reader, rows []models.Row, notify Notifier, opts Options) *Session {
	if notify == nil {
		notify = func(string, Variant) {}
	}
	return &Session{reader: reader, rows: rows, notify: notify, opts: opts}
}

// Rows returns the current rows.
func (s *Session) Rows() []models.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// SetRows replaces the rows after a refetch. Outstanding pastes are discarded.
func (s *Session) SetRows(rows []models.Row) {
	s.Invalidate()
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
}

// Invalidate discards the result of any outstanding paste, e.g. on teardown.
func (s *Session) Invalidate() {
	s.generation.Add(1)
}

// Pasting reports whether a paste is outstanding.
func (s *Session) Pasting() bool {
	return s.pasting.Load()
}

// Paste runs one paste-to-fill. Concurrent calls fail with ErrPasteInProgress and a
// paste overtaken by Invalidate fails with ErrStalePaste; neither notifies the user.
func (s *Session) Paste(ctx context.Context) (Outcome, error) {
	if !s.pasting.CompareAndSwap(false, true) {
		return Outcome{}, ErrPasteInProgress
	}
	defer s.pasting.Store(false)

	gen := s.generation.Load()
	log := s.opts.logger().With(zap.String("paste_id", uuid.NewString()))
	opts := s.opts
	opts.Logger = log

	outcome, err := PasteToFill(ctx, s.reader, s.Rows(), opts)

	s.mu.Lock()
	stale := s.generation.Load() != gen
	if !stale && err == nil {
		s.rows = outcome.Result.UpdatedRows
	}
	s.mu.Unlock()

	if stale {
		log.Debug("Discarding stale paste")
		return Outcome{}, ErrStalePaste
	}
	if outcome.Variant != VariantNone {
		s.notify(outcome.Message, outcome.Variant)
	}
	return outcome, err
}
