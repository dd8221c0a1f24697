// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"errors"
	"fmt"
)

// ErrCredentialsMissing is returned before any network call when no API
// credential resolves from the session, secret store, environment, or
// configuration.
var ErrCredentialsMissing = errors.New("gigachat credentials not configured")

// TransportError wraps a network or provider failure raised during a model
// call. Callers never see the raw SDK error directly.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gigachat api: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
