package domain

import "errors"

var (
	ErrConferenceNotFound = errors.New("conference not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSpeakerNotFound    = errors.New("speaker not found")
	ErrProfileNotFound    = errors.New("profile not found")
)

var (
	ErrNoSeatsAvailable  = errors.New("there are no seats available")
	ErrAlreadyRegistered = errors.New("already registered for this conference")
	ErrAlreadyInWishlist = errors.New("session is already in the wishlist")
	ErrTxConflict        = errors.New("concurrent modification, try again")
)

var (
	ErrUnauthorized = errors.New("authorization required")
	ErrForbidden    = errors.New("only the conference organizer may do this")
)

var (
	ErrValidation                = errors.New("validation error")
	ErrInvalidFilter             = errors.New("filter contains an invalid field or operator")
	ErrMultipleInequalityFilters = errors.New("inequality filter is allowed on only one field")
)
