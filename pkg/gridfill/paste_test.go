package gridfill

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/clipboard"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
	"github.com/ukaji3/gridfill-go/pkg/gridfill/parser"
)

func gridRows() []models.Row {
	return []models.Row{
		{Fields: map[string]any{"display_internal_id": "ID1"}},
		{Fields: map[string]any{"display_internal_id": "ID2"}},
		{Type: models.RowTypeTotal},
	}
}

func textReader(s string) clipboard.Reader {
	return clipboard.Static{Payload: models.Payload{models.MIMEText: s}}
}

func TestPasteToFill(t *testing.T) {
	tests := []struct {
		name     string
		reader   clipboard.Reader
		variant  Variant
		message  string
		errIs    error
		inserted int
	}{
		{
			name:     "all rows matched",
			reader:   textReader("ID1\tfoo\t10\nID2\tbar\t20\n"),
			variant:  VariantSuccess,
			message:  "Successfully pasted 2/2 entries",
			inserted: 2,
		},
		{
			name:     "partial match from html",
			reader:   clipboard.Static{Payload: models.Payload{models.MIMEHTML: "<table><tr><td>ID2</td><td>5</td></tr><tr><td>ID9</td><td>6</td></tr></table>"}},
			variant:  VariantSuccess,
			message:  "Successfully pasted 1/2 entries",
			inserted: 1,
		},
		{
			name:    "no match",
			reader:  textReader("X\t1\n"),
			variant: VariantError,
			message: MsgNoValidEntries,
			errIs:   ErrNoValidEntries,
		},
		{
			name:    "single column",
			reader:  textReader("ID1\nID2\n"),
			variant: VariantError,
			message: MsgInvalidTable,
			errIs:   parser.ErrNotKeyValueTable,
		},
		{
			name:    "html without table",
			reader:  clipboard.Static{Payload: models.Payload{models.MIMEHTML: "<b>hi</b>"}},
			variant: VariantError,
			message: MsgInvalidTable,
			errIs:   parser.ErrNoTableFound,
		},
		{
			name:    "nothing copied",
			reader:  clipboard.Static{},
			variant: VariantError,
			message: MsgInvalidTable,
			errIs:   clipboard.ErrUnreadable,
		},
		{
			name:    "permission denied is silent",
			reader:  clipboard.Static{Err: fs.ErrPermission},
			variant: VariantNone,
			errIs:   clipboard.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := gridRows()
			outcome, err := PasteToFill(context.Background(), tt.reader, rows, DefaultOptions("amount"))

			assert.Equal(t, tt.variant, outcome.Variant)
			assert.Equal(t, tt.message, outcome.Message)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				var pe *PasteError
				assert.True(t, errors.As(err, &pe))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.inserted, outcome.Result.Inserted)
			assert.Equal(t, gridRows(), rows)
		})
	}
}

func TestPasteToFillUsesLocale(t *testing.T) {
	loc := parser.NumberLocale{Group: ".", Decimal: ","}
	opts := DefaultOptions("amount")
	opts.Locale = &loc

	outcome, err := PasteToFill(context.Background(), textReader("ID1\t$ 1.234,56\n"), gridRows(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1234.56, outcome.Result.UpdatedRows[0].Fields["amount"])
}

func TestPasteToFillCustomMutator(t *testing.T) {
	opts := Options{
		MatchField: "display_internal_id",
		Mutate: func(row *models.Row, value string) {
			row.Set("note", "pasted:"+value)
		},
	}
	outcome, err := PasteToFill(context.Background(), textReader("ID2\tx\n"), gridRows(), opts)
	require.NoError(t, err)
	assert.Equal(t, "pasted:x", outcome.Result.UpdatedRows[1].Fields["note"])
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	assert.Equal(t, DefaultMatchField, o.MatchFieldOrDefault())
	assert.Equal(t, parser.LocaleEnglish, o.NumberLocale())
	assert.NotNil(t, o.Mutator())
	assert.NotNil(t, o.logger())
}
