package cli

import (
	"context"
	"io"
)

// RunWithWriter runs the CLI application writing command output to w
func RunWithWriter(ctx context.Context, args []string, w io.Writer) error {
	return run(ctx, args, w)
}

// SetOpenBrowser replaces the browser launcher and returns a restore function
func SetOpenBrowser(f func(url string) error) func() {
	prev := openBrowser
	openBrowser = f
	return func() { openBrowser = prev }
}
