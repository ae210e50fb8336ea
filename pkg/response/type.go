package response

// DefaultErrorMessage is returned for unclassified internal failures.
const DefaultErrorMessage = "Internal server error"

// ErrResp is the standard JSON error body.
type ErrResp struct {
	Error string `json:"error"`
}

// MessageResp is the standard JSON body for operations that only report a message.
type MessageResp struct {
	Message string `json:"message"`
}
