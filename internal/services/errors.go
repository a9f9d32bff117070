package services

import "errors"

// Sentinel errors for the modification workflow. Handlers translate these to
// HTTP statuses; services never touch the transport layer.
var (
	// ErrForbidden: identity present but lacking role or ownership.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound: referenced project, user or modification does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidField: field name outside the editable registry.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidValue: value cannot be parsed per the field's kind.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidState: modification already resolved.
	ErrInvalidState = errors.New("modification already processed")
	// ErrNoChangesToNotify: client digest requested with no unsent changes.
	ErrNoChangesToNotify = errors.New("no unsent changes to notify about")
	// ErrMissingEmail: project owner has no email address.
	ErrMissingEmail = errors.New("client email not found")
	// ErrAlreadyExists: unique constraint hit, e.g. duplicate client email.
	ErrAlreadyExists = errors.New("already exists")
)
