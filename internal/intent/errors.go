package intent

import "errors"

// ErrDeclined means the provider produced no usable classification.
var ErrDeclined = errors.New("intent: provider declined")
