package gemini

import "time"

const (
	// DefaultModel is used when the config names none.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the v1beta REST root.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds one HTTP call when no client is supplied.
	DefaultTimeout = 30 * time.Second

	functionCallingModeAny = "ANY"

	// maxErrorBody caps how much of a failed response is read.
	maxErrorBody = 64 << 10
)
