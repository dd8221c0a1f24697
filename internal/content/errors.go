// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import "fmt"

// FormatError reports model output that could not be decoded or validated
// into the expected structure. Raw carries the complete unprocessed model
// output so the caller can show the user what came back instead of
// discarding an expensive generation.
type FormatError struct {
	Err error
	Raw string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("model output is not a valid content plan: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
