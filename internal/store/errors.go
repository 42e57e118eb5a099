package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new player
	// fails because a player with the same username already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrPlayerNotFound is returned when a query expected to match at least
	// one player record produces an empty result set.
	ErrPlayerNotFound = errors.New("no player was found")

	// ErrTokenMismatch is returned when the compare-and-swap token rotation
	// affects zero rows: the presented token is no longer the one stored for
	// the player, meaning another request already rotated it.
	ErrTokenMismatch = errors.New("stored token does not match presented token")

	// ErrScoreNotFound is returned when no score record exists for the
	// requested (player, mode) pair.
	ErrScoreNotFound = errors.New("no score record was found")

	// ErrScoreConflict is returned when the conditional score update affects
	// zero rows: the stored score is no longer the value the caller verified
	// against, meaning a concurrent submission won the race.
	ErrScoreConflict = errors.New("score record changed concurrently")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
