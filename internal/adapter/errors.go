package adapter

import "errors"

// Sentinel errors mapped from transport failures. The sync manager relies on
// errors.Is against these values to produce the user-facing failure messages,
// so each class must stay separately detectable.
var (
	// ErrUnauthenticated maps HTTP 401: no valid signed-in user.
	ErrUnauthenticated = errors.New("user is not authenticated")
	// ErrPermissionDenied maps HTTP 403: the store's access rules rejected
	// the operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrBlockedRequest marks network-level failures before any HTTP status
	// was received — typically content blockers or connectivity loss.
	ErrBlockedRequest = errors.New("request blocked or network unreachable")
	// ErrNotFound maps HTTP 404: the addressed document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrBadRequest maps HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrConflict maps HTTP 409.
	ErrConflict = errors.New("conflict")
	// ErrInternal maps HTTP 5xx.
	ErrInternal = errors.New("internal server error")
)
