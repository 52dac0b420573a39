package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/litsplice/internal/model"
)

// Locate finds the region between startMarker and endMarker in text.
//
// The first occurrence of startMarker is used, and the first occurrence of
// endMarker at or after the end of it. With keepStartMarkerLine the span
// starts right after the newline closing the start marker's line; otherwise
// it starts at the marker itself. The span always ends where endMarker begins.
func Locate(text, startMarker, endMarker string, keepStartMarkerLine bool) (m.Span, error) {
	if startMarker == "" || endMarker == "" {
		return m.Span{}, fmt.Errorf("%w: markers must not be empty", ErrMarkerNotFound)
	}

	startIdx := strings.Index(text, startMarker)
	if startIdx == -1 {
		return m.Span{}, fmt.Errorf("%w: start marker %q", ErrMarkerNotFound, startMarker)
	}

	afterStart := startIdx + len(startMarker)

	endRel := strings.Index(text[afterStart:], endMarker)
	if endRel == -1 {
		return m.Span{}, fmt.Errorf("%w: end marker %q after start marker %q", ErrMarkerNotFound, endMarker, startMarker)
	}

	span := m.Span{Start: startIdx, End: afterStart + endRel}

	if keepStartMarkerLine {
		lineEnd, ok := lineEndAfter(text, startMarker, afterStart)
		if !ok || lineEnd > span.End {
			return m.Span{}, fmt.Errorf("%w: end marker %q must start after the line holding start marker %q",
				ErrMarkerNotFound, endMarker, startMarker)
		}

		span.Start = lineEnd
	}

	return span, nil
}

// lineEndAfter returns the offset just past the newline that terminates the
// line containing the marker ending at afterMarker. A marker that already ends
// with a newline is its own line terminator.
func lineEndAfter(text, marker string, afterMarker int) (int, bool) {
	if strings.HasSuffix(marker, "\n") {
		return afterMarker, true
	}

	nl := strings.IndexByte(text[afterMarker:], '\n')
	if nl == -1 {
		return 0, false
	}

	return afterMarker + nl + 1, true
}
