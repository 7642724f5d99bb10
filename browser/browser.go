// Package browser opens URLs with the platform's default handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/fwojciec/linkspan"
)

// Interface compliance check.
var _ linkspan.URLOpener = Opener{}

// Opener launches the platform's default URL handler without waiting for it
// to exit. The zero value is ready to use.
type Opener struct{}

// Open launches the handler for url. Opening an empty URL is refused with
// ErrEmptyURL so inert links never reach the platform handler.
func (Opener) Open(url string) error {
	if url == "" {
		return linkspan.ErrEmptyURL
	}
	cmd, err := command(runtime.GOOS, url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// command builds the launcher invocation for the given platform.
func command(goos, url string) (*exec.Cmd, error) {
	switch goos {
	case "linux":
		return exec.Command("xdg-open", url), nil
	case "darwin":
		return exec.Command("open", url), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", url), nil
	default:
		return nil, fmt.Errorf("no URL handler for %s: %w", goos, linkspan.ErrUnsupportedPlatform)
	}
}
