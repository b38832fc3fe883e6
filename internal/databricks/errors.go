/*
Copyright © 2025 Stackaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package databricks

import (
	"errors"
	"fmt"

	"github.com/databricks/databricks-sdk-go/apierr"
)

// RemoteServiceError describes a failed call to the workspace API
type RemoteServiceError struct {
	Op         string
	StatusCode int
	ErrorCode  string
	Message    string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d, %s)", e.Op, e.Message, e.StatusCode, e.ErrorCode)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// newRemoteError wraps err as a RemoteServiceError for op, keeping API status details
func newRemoteError(op string, err error) error {
	if err == nil {
		return nil
	}
	remote := &RemoteServiceError{Op: op, Message: err.Error(), Err: err}
	var apiErr *apierr.APIError
	if errors.As(err, &apiErr) {
		remote.StatusCode = apiErr.StatusCode
		remote.ErrorCode = apiErr.ErrorCode
		remote.Message = apiErr.Message
	}
	return remote
}

// IsRemoteServiceError reports whether err came from the workspace API
func IsRemoteServiceError(err error) bool {
	var remote *RemoteServiceError
	return errors.As(err, &remote)
}
