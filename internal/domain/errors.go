package domain

import "errors"

// Sentinel errors surfaced by the embedding pipeline. Callers match them with
// errors.Is; the wrapped message names the file, marker or target involved.
var (
	// ErrFileNotFound means the asset or host file does not exist or cannot be read.
	ErrFileNotFound = errors.New("file not found")
	// ErrEncoding means the asset is not valid text in the declared encoding
	// or holds a character that cannot appear in the literal.
	ErrEncoding = errors.New("encoding error")
	// ErrMarkerNotFound means a marker is missing or misplaced in the host document.
	ErrMarkerNotFound = errors.New("marker not found")
	// ErrMarkerConflict means the spliced document would no longer locate the
	// inserted block with the same markers.
	ErrMarkerConflict = errors.New("marker conflict")
	// ErrInvalidSpan means a span does not fit inside the document.
	ErrInvalidSpan = errors.New("invalid span")
	// ErrInvalidTarget means a target is missing required settings.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrStale is returned by check mode when a host document is out of date.
	ErrStale = errors.New("host document is stale")
)
