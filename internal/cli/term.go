package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// interactive reports whether prompts can be shown: both ends of the
// command must be a terminal.
func interactive(in io.Reader, out io.Writer) bool {
	return isTerminal(in) && isTerminal(out)
}
