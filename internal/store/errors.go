package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because another user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when no session row matches the
	// presented token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken is returned when a category create or rename
	// collides with an existing name, compared case-insensitively.
	ErrCategoryNameTaken = errors.New("category name already exists")

	// ErrTemplateNotFound is returned when an email template id does not
	// resolve.
	ErrTemplateNotFound = errors.New("email template not found")

	// ErrMediaNotFound is returned when a media record does not exist for
	// the given stored filename.
	ErrMediaNotFound = errors.New("media file not found")

	// ErrContentNotFound is returned by the primary content store when no
	// row exists for a content type. Callers fall back to the file store.
	ErrContentNotFound = errors.New("content not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no columns to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
