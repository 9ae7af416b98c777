// Package services file: services/errors.go
package services

import "errors"

// Sentinel errors returned by gated store operations. Callers decide whether
// to surface these to the user; the store has already recorded the
// user-visible activity entry where one is warranted.
var (
	// ErrPermissionDenied means the acting role may not perform the operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDuplicateRequest means the acting user already has a pending request
	// for the same event.
	ErrDuplicateRequest = errors.New("duplicate pending request")

	// ErrNotFound means a referenced entity id does not exist. Treated as a
	// data-integrity edge case: no activity entry is recorded.
	ErrNotFound = errors.New("not found")
)
