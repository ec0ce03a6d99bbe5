package handler

const (
	// APIPath is the prefix for all JSON API routes.
	APIPath = "/api"

	// InternalErrorMessage is the generic, non-leaking message returned on
	// unexpected errors.
	InternalErrorMessage = "An error occurred, please try again later"

	// ErrNilACSFatalLogMsg is used if app or cfg or store var pointer is nil.
	ErrNilACSFatalLogMsg = "app, cfg or store is nil"
)
