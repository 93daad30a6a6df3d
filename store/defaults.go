package store

import (
	"time"

	"github.com/google/uuid"
)

// resolveDefault expands the magic generator values supported by the
// defaults table. Any other value is taken as a literal.
func resolveDefault(v any) any {
	switch v {
	case "uuid()":
		return uuid.NewString()
	case "unixnano()":
		return time.Now().UnixNano()
	}
	return v
}
