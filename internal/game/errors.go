package game

import "errors"

var (
	// ErrCollisionResolution means the collision pass addressed a brick the
	// wall does not hold. It indicates a bug and should stop the session.
	ErrCollisionResolution = errors.New("game: collision resolution failed")

	// ErrPersistence wraps a failure to save progress after an attempt.
	ErrPersistence = errors.New("game: cannot persist progress")
)
