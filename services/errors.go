package services

import "errors"

var (
	// ErrUserNotFound is returned when a clerk ID resolves to no user.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound signals that a user has no progress data. Callers
	// surface it as "no progress", never as fabricated zeros-with-goals.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrAlreadyJoined rejects a second participation in the same challenge.
	ErrAlreadyJoined = errors.New("challenge already joined")

	// ErrAlreadyCompleted rejects completing a participation twice; points
	// are never re-awarded.
	ErrAlreadyCompleted = errors.New("participation already completed")
)
