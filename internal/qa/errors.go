package qa

import "errors"

// ErrNoTextContent is returned when the target document has no extracted
// text to answer from.
var ErrNoTextContent = errors.New("no text content available")
