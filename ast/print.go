package ast

import (
	"io"
	"strings"
)

// Fprint writes the source text of the tree rooted at the given node to w.
// Terminals are emitted in source order along with their trivia, so printing
// an unmodified tree reproduces the bytes it was built from.
func Fprint(w io.Writer, node Node) error {
	return Walk(node, func(n Node) error {
		t, ok := n.(TerminalNode)
		if !ok {
			return nil
		}
		if _, err := io.WriteString(w, t.LeadingTrivia()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, t.Text()); err != nil {
			return err
		}
		_, err := io.WriteString(w, t.TrailingTrivia())
		return err
	}, nil)
}

// Text returns the source text of the tree rooted at the given node.
func Text(node Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}
