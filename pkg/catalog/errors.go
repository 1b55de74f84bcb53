package catalog

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrContentNotFound indicates no live item holds the requested id
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidSortKey indicates a sort key that is unknown or cannot be
	// compared across the items being sorted
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrDuplicateID indicates an insert would have produced a second live
	// item with the same id
	ErrDuplicateID = errors.New("duplicate content id")

	// ErrInvalidDraft indicates a draft is missing a required field
	ErrInvalidDraft = errors.New("invalid content draft")
)

// ContentError represents an error related to content operations
type ContentError struct {
	ContentID string
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	if e.ContentID == "" {
		return fmt.Sprintf("content operation %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// SortKeyError reports which sort key was rejected and why.
type SortKeyError struct {
	Key    string
	Reason string
}

func (e *SortKeyError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidSortKey, e.Key, e.Reason)
}

func (e *SortKeyError) Unwrap() error {
	return ErrInvalidSortKey
}
