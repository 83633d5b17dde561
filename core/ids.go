package core

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// NewRequestID generates a ULID-based ID used to correlate all log lines
// produced while handling one webhook request.
// Example: req_01G0EZ1XTM37C5X11SQTDNCTM1
func NewRequestID() string {
	return fmt.Sprintf("req_%s", ulid.Make().String())
}
