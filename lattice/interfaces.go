package lattice

import (
	"io"
)

// A Formatter renders reported patterns for the file and dir reporters.
type Formatter interface {
	FileExt() string
	PatternName(*Pattern) string
	FormatPattern(io.Writer, *Pattern) error
}
