package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrInvalidUsername rejects usernames outside 3-20 characters of
	// [A-Za-z0-9_].
	ErrInvalidUsername = errors.New("username must be 3-20 characters of letters, digits or underscore")

	// ErrUnknownMode rejects submissions and reads for a game mode outside
	// the closed enum.
	ErrUnknownMode = errors.New("unknown game mode")

	// ErrScoreOutOfRange rejects scores outside [0, 999999].
	ErrScoreOutOfRange = errors.New("score out of allowed range")

	// ErrScoreSequence rejects submissions that break the monotonic
	// contract: first submission must be 0 or 1, every later one exactly
	// one above the stored value.
	ErrScoreSequence = errors.New("score breaks the monotonic sequence")

	// ErrAlreadyAwarded is reported when an achievement is awarded twice to
	// the same player.
	ErrAlreadyAwarded = errors.New("achievement already awarded")

	// ErrVersionIsNotSpecified is a startup misconfiguration: the app
	// version must be set for the version endpoint to serve.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
