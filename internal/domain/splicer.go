package domain

import (
	"fmt"

	m "github.com/mouse-blink/litsplice/internal/model"
)

// Splice returns text with the span replaced by block. Bytes outside the span
// are kept as they are.
func Splice(text string, span m.Span, block string) (string, error) {
	if !span.Within(len(text)) {
		return "", fmt.Errorf("%w: [%d, %d) in a document of %d bytes", ErrInvalidSpan, span.Start, span.End, len(text))
	}

	return text[:span.Start] + block + text[span.End:], nil
}
