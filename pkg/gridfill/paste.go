package gridfill

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/clipboard"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/importer"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

// Variant is the notification style of a paste outcome.
type Variant string

const (
	// VariantNone means the paste was cancelled and nothing should be shown.
	VariantNone    Variant = ""
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

// User-facing messages.
const (
	MsgInvalidTable   = "Could not read a valid table from clipboard! Make sure you are pasting a 2 column table."
	MsgNoValidEntries = "No valid entries found in pasted data!"
)

// Outcome is what the user is told about a paste.
type Outcome struct {
	// Variant is the notification style; VariantNone for silent cancellation.
	Variant Variant `json:"variant"`
	// Message is the notification text.
	Message string `json:"message,omitempty"`
	// Result holds the import result when rows were matched.
	Result importer.Result `json:"-"`
}

// PasteToFill reads the clipboard, extracts key/value entries and applies them to rows.
// rows are never modified; on success Outcome.Result.UpdatedRows holds the new rows.
// Permission denial and cancellation return VariantNone with the error.
func PasteToFill(ctx context.Context, reader clipboard.Reader, rows []models.Row, opts Options) (Outcome, error) {
	log := opts.logger()

	payload, err := reader.Read(ctx)
	if err != nil {
		if errors.Is(err, clipboard.ErrPermissionDenied) || ctx.Err() != nil {
			log.Debug("Paste cancelled", zap.Error(err))
			return Outcome{}, NewPasteError(StageRead, err)
		}
		log.Warn("Clipboard read failed", zap.Error(err))
		return failure(MsgInvalidTable), NewPasteError(StageRead, err)
	}
	log.Debug("Clipboard read", zap.Strings("types", payload.Types()))

	raw, err := parser.ReadClipboardTable(payload)
	if err != nil {
		log.Warn("Clipboard table parse failed", zap.Error(err))
		return failure(MsgInvalidTable), NewPasteError(StageParse, err)
	}
	table, err := parser.KeyValueTable(raw)
	if err != nil {
		log.Debug("Pasted table rejected", zap.Int("rows", len(raw)), zap.Error(err))
		return failure(MsgInvalidTable), NewPasteError(StageParse, err)
	}

	entries := parser.ToImportEntries(table)
	if len(entries) == 0 {
		return failure(MsgNoValidEntries), NewPasteError(StageMatch, ErrNoValidEntries)
	}

	res, err := importer.ApplyImportToRows(entries, rows, opts.MatchFieldOrDefault(), opts.Mutator(), opts.NumberLocale())
	if err != nil {
		log.Error("Applying paste failed", zap.Error(err))
		return failure(err.Error()), NewPasteError(StageApply, err)
	}
	log.Debug("Paste matched",
		zap.Int("entries", len(entries)),
		zap.Int("inserted", res.Inserted),
		zap.Int("total", res.Total),
		zap.Int("duplicates", res.Duplicates))

	if res.Inserted == 0 {
		return failure(MsgNoValidEntries), NewPasteError(StageMatch, ErrNoValidEntries)
	}

	return Outcome{
		Variant: VariantSuccess,
		Message: fmt.Sprintf("Successfully pasted %d/%d entries", res.Inserted, res.Total),
		Result:  res,
	}, nil
}

func failure(msg string) Outcome {
	return Outcome{Variant: VariantError, Message: msg}
}
