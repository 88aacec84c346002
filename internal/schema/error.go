package schema

import "errors"

// ErrUnknownEncoding occurs when an output encoding name cannot be resolved to
// an [Encoding].
var ErrUnknownEncoding = errors.New("unknown output encoding")
