package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotSignedIn rejects a sync action before any I/O happens: bulk
	// reconciliation requires an authenticated user.
	ErrNotSignedIn = errors.New("you must be signed in to sync your data")

	// ErrSyncBlocked signals network-level interference, typically a content
	// blocker intercepting the request.
	ErrSyncBlocked = errors.New("sync request was blocked; if you use an ad-blocker, try disabling it for this app")

	// ErrSyncPermissionDenied signals the cloud store rejected the operation
	// on its access rules. Not retried automatically.
	ErrSyncPermissionDenied = errors.New("cloud denied access to your data; sign out and sign in again, and check your account permissions")

	// ErrSyncFailed is the generic bulk-action failure wrapper when no more
	// specific classification applies.
	ErrSyncFailed = errors.New("sync failed")

	// ErrSyncAlreadyResolved is returned when a second bulk action is
	// requested after the one-time reconciliation already completed.
	ErrSyncAlreadyResolved = errors.New("sync decision was already resolved for this session")

	// ErrSyncInFlight is returned when a bulk action is requested while
	// another one is still running.
	ErrSyncInFlight = errors.New("a sync operation is already in progress")

	// ErrActionNotOffered is returned when the requested bulk action is not
	// among the actions valid for the classified local/cloud state.
	ErrActionNotOffered = errors.New("requested sync action is not available")
)
