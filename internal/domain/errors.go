package domain

import "fmt"

type errString string

func (e errString) Error() string { return string(e) }

const (
	ErrNoDisplays          = errString("no displays detected")
	ErrUnsupportedPlatform = errString("display detection is not supported on this platform, use --layout")
	ErrInvalidSource       = errString("unable to parse color or open file")
	ErrPromptCancelled     = errString("prompt cancelled")
)

// CountMismatchError is returned when the number of sources differs from the
// number of detected displays.
type CountMismatchError struct {
	Displays int
	Sources  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("detected %d displays but %d images were provided", e.Displays, e.Sources)
}
