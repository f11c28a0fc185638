package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, used by tests
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive removes any override set by ForceSetIsInteractive
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if both stdin and stdout are terminals, which is
// when expressions are typed by a user rather than piped in
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// IsColorTerminal returns true if stdout is a terminal that is not declared
// dumb and NO_COLOR is not set
func IsColorTerminal() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
