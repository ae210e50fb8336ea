package media

import "errors"

// ErrConversionFailed means the external media tool could not produce an
// audio track (corrupt input, no audio stream). Scratch-storage faults are
// reported as plain wrapped errors, not this sentinel.
var ErrConversionFailed = errors.New("media conversion failed")

// ErrUnsupportedType means the filename extension is neither a recognized
// audio nor video type.
var ErrUnsupportedType = errors.New("unsupported media type")
