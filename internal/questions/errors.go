/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package questions

import "fmt"

// ValidationError reports malformed operator input for a field.
// The collector recovers from it by asking again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NoChoicesError reports a selection field whose option source returned nothing
type NoChoicesError struct {
	Field string
}

func (e *NoChoicesError) Error() string {
	return fmt.Sprintf("no choices available for %s", e.Field)
}
