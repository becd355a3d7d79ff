package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT into users violates
	// the case-insensitive unique index on email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTokenNotMatched is returned when a conditional UPDATE keyed by a
	// token digest affects zero rows: the token is unknown, already used,
	// or expired.
	ErrTokenNotMatched = errors.New("no row matched the token")

	// ErrClassNotFound is returned when no class matches the id or join code.
	ErrClassNotFound = errors.New("class was not found")

	// ErrClassCodeTaken is returned when a generated join code collides with
	// an existing class.
	ErrClassCodeTaken = errors.New("class code is already taken")

	// ErrEnrollmentNotFound is returned when the user is not a member of the class.
	ErrEnrollmentNotFound = errors.New("enrollment was not found")

	// ErrAnnouncementNotFound is returned when no announcement of the class
	// matches the id.
	ErrAnnouncementNotFound = errors.New("announcement was not found")

	// ErrAssignmentNotFound is returned when no assignment of the class
	// matches the id.
	ErrAssignmentNotFound = errors.New("assignment was not found")

	// ErrSubmissionNotFound is returned when the student has no live
	// submission for the assignment.
	ErrSubmissionNotFound = errors.New("submission was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
