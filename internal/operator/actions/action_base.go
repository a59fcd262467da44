package actions

import (
	"context"

	"github.com/ledgerview/dashboard-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
