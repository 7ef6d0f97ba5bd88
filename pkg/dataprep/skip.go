package dataprep

import (
	"fmt"
	"strings"
)

// SkipError means a step could not apply to this table and left it unchanged.
// It is not a failure: callers record it and carry on.
type SkipError struct {
	Missing []string
	Reason  string
}

func (e *SkipError) Error() string {
	if len(e.Missing) == 0 {
		return "skipped: " + e.Reason
	}
	return fmt.Sprintf("skipped: %s: missing columns {%s}", e.Reason, strings.Join(e.Missing, ", "))
}
