package service

import (
	"errors"
	"fmt"

	"lingua/backend/internal/service/ai"
)

var (
	ErrInvalid  = ai.ErrInvalidInput
	ErrUpstream = errors.New("model call failed")
)

// ValidationError reports a blank required field. It matches ErrInvalid.
type ValidationError = ai.ValidationError

// UpstreamError wraps a failed model call. Op names the task that failed.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
