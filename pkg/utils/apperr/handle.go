package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs an error that terminates a command, with the values
// attached through goerr.V
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if values := goerr.Values(err); len(values) > 0 {
		logger = logger.With("values", values)
	}
	logger.Error("application error", "error", err)
}
