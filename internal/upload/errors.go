package upload

// Machine-readable upload rejection codes, surfaced alongside the message.
const (
	CodeFileSize       = "LIMIT_FILE_SIZE"
	CodeFileCount      = "LIMIT_FILE_COUNT"
	CodeUnexpectedFile = "LIMIT_UNEXPECTED_FILE"
)

// Error rejects an upload batch. The whole request fails; there is no
// partial acceptance.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
