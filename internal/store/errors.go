package store

import "errors"

var (
	// ErrNotFound is a sentinel error used when a queried document or user
	// does not exist in the database.
	ErrNotFound = errors.New("record is not found")
	// ErrAlreadyExists indicates a uniqueness violation (e.g. duplicate
	// login during registration).
	ErrAlreadyExists = errors.New("record already exists")
	// ErrPermissionDenied indicates the database rejected the operation due
	// to access rules rather than a transient fault.
	ErrPermissionDenied = errors.New("permission denied by storage")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")
)
