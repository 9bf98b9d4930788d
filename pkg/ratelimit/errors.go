package ratelimit

import "errors"

var ErrLimitExceeded = errors.New("rate limit exceeded")
