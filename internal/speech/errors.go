package speech

import "errors"

// ErrTranscriptionFailed wraps any upstream speech-to-text failure
// (network, auth, unsupported format, malformed response).
var ErrTranscriptionFailed = errors.New("transcription failed")
