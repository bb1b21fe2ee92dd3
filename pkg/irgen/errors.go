package irgen

import (
	"fmt"

	"github.com/elqu/hxwk/internal/types"
)

// LowerError represents a semantic error found during lowering, with
// the source location of the offending node. It renders in the
// compiler's diagnostic format "LINE:COL: Error: MSG".
type LowerError struct {
	Message string
	Line    int
	Column  int
}

func (e LowerError) Error() string {
	return fmt.Sprintf("%d:%d: Error: %s", e.Line, e.Column, e.Message)
}

// errorAt builds a LowerError anchored at a node's source position.
func errorAt(pos types.SourcePos, format string, args ...interface{}) error {
	return LowerError{
		Message: fmt.Sprintf(format, args...),
		Line:    pos.Line,
		Column:  pos.Column,
	}
}
