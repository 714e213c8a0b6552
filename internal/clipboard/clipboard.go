// Package clipboard writes text to the system clipboard by shelling out to
// the platform utility (pbcopy, xclip/xsel/wl-copy, clip).
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard utility can be found.
type ErrUnavailable struct {
	OS string
}

func (e *ErrUnavailable) Error() string {
	switch e.OS {
	case "linux":
		return "no clipboard utility found; install xclip, xsel or wl-clipboard"
	default:
		return fmt.Sprintf("clipboard not supported on %s", e.OS)
	}
}

// Copy writes text to the system clipboard. Copy is a user-initiated
// convenience action: callers generally surface failures as a status note
// rather than an error dialog.
func Copy(text string) error {
	switch runtime.GOOS {
	case "darwin":
		return pipe(text, "pbcopy")
	case "windows":
		return pipe(text, "cmd", "/c", "clip")
	case "linux":
		return copyLinux(text)
	default:
		return &ErrUnavailable{OS: runtime.GOOS}
	}
}

// Available reports whether a clipboard utility is present.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		return haveCommand("pbcopy")
	case "windows":
		return true
	case "linux":
		return haveCommand("xclip") || haveCommand("xsel") || haveCommand("wl-copy")
	default:
		return false
	}
}

func copyLinux(text string) error {
	attempts := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
	}
	var lastErr error
	for _, args := range attempts {
		if !haveCommand(args[0]) {
			continue
		}
		if err := pipe(text, args[0], args[1:]...); err != nil {
			lastErr = fmt.Errorf("%s failed: %w", args[0], err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return &ErrUnavailable{OS: runtime.GOOS}
}

func pipe(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func haveCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
