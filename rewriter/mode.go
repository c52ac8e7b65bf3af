package rewriter

import "fmt"

// NullConditionalMode controls how a rewrite handles null-conditional
// access expressions such as "a?.b" and "a?[i]".
type NullConditionalMode int

const (
	// NullConditionalNone reports a diagnostic for any null-conditional
	// access and leaves the expression unrewritten.
	NullConditionalNone NullConditionalMode = iota
	// NullConditionalIgnore drops the null guard and rewrites the access
	// as if it were unconditional: "a?.b" becomes "a.b".
	NullConditionalIgnore
	// NullConditionalRewrite materializes the guard as an explicit
	// conditional: "a?.b" becomes "(a != null ? (a.b) : (T)null)", where T
	// is the converted type of the whole access.
	NullConditionalRewrite
)

func (m NullConditionalMode) String() string {
	switch m {
	case NullConditionalNone:
		return "none"
	case NullConditionalIgnore:
		return "ignore"
	case NullConditionalRewrite:
		return "rewrite"
	default:
		return fmt.Sprintf("NullConditionalMode(%d)", int(m))
	}
}
