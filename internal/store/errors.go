package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists in the
	// database.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecipeNotFound is returned when a query or mutation targets a recipe
	// that does not exist in the database.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrFreezerItemNotFound is returned when a query or mutation targets a
	// freezer item that does not exist in the database.
	ErrFreezerItemNotFound = errors.New("freezer item was not found")

	// ErrCategoryNotFound is returned when a query or mutation targets a
	// category that does not exist in the database.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrCategoryAlreadyExists is returned when creating a category fails
	// because one with the same name already exists.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrCategoryInUse is returned when deleting a category fails because
	// recipes or freezer items still reference it.
	ErrCategoryInUse = errors.New("category is still referenced")

	// ErrLocalSessionNotFound is returned by the client state repository when
	// no session has been persisted yet.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrLocalSnapshotNotFound is returned by the client state repository when
	// no snapshot has been persisted for the requested collection.
	ErrLocalSnapshotNotFound = errors.New("local snapshot not found")
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
