package wire

import "fmt"

// TruncatedError reports a decode that ran out of input mid-field.
type TruncatedError struct {
	Field string
	Need  int
	Got   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("wire: truncated %s: need %d bytes, got %d", e.Field, e.Need, e.Got)
}

// DeserializationError reports a structurally invalid decode that isn't a
// simple length mismatch (§7 `DeserializationError`).
type DeserializationError struct {
	Reason string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("wire: deserialization error: %s", e.Reason)
}
