package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine with panic recovery. Errors and
// panics are logged, not returned. The returned channel is closed when the
// handler has finished.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(ctx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if ctx.Err() != nil {
			return
		}

		if err := handler(ctx); err != nil {
			ctxlog.From(ctx).Warn("Error in async handler", "error", err)
		}
	}()

	return done
}
