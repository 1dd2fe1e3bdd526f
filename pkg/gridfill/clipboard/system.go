package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"

	"github.com/ukaji3/gridfill-go/pkg/gridfill/models"
)

// System reads plain text from the OS clipboard.
type System struct{}

// Read implements Reader.
func (System) Read(ctx context.Context) (models.Payload, error) {
	if clipboard.Unsupported {
		return nil, errors.Join(ErrUnreadable, errors.New("no clipboard utility available"))
	}
	text, err := readContext(ctx, clipboard.ReadAll)
	if err != nil {
		return nil, classify(err)
	}
	if text == "" {
		return nil, ErrUnreadable
	}
	return models.Payload{models.MIMEText: text}, nil
}
