package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format writes edges as a literal sequence of coordinate-pair tuples:
//
//	[((0, 0), (1, 0)), ((1, 0), (1, 1))]
//
// An empty or nil slice renders as "[]". No trailing newline is written.
// Write failures are returned wrapped.
// Complexity: O(E).
func Format(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	if err := writeListing(bw, edges); err != nil {
		return fmt.Errorf("maze: format: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("maze: format: %w", err)
	}

	return nil
}

// Listing returns the Format rendering of edges as a string.
func Listing(edges []Edge) string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = writeListing(&sb, edges)

	return sb.String()
}

func writeListing(w io.Writer, edges []Edge) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, e := range edges {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "((%d, %d), (%d, %d))", e.From.X, e.From.Y, e.To.X, e.To.Y); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")

	return err
}
