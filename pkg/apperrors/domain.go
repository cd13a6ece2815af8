package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the job-board domain. Repositories
return plain sentinel errors; services convert them here before handing them
to the boundary handler.
*/

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrPersistence carries the store's field-level validation messages after a
// rejected save. Details is a field -> message map.
func ErrPersistence(err error, message string, fieldErrors map[string]string) *AppError {
	appErr := Wrap(err, CodePersistenceFailed, "store", message, http.StatusUnprocessableEntity)
	if len(fieldErrors) > 0 {
		appErr.Details = fieldErrors
	}
	return appErr
}

// ErrGateway wraps a payment-gateway failure. Recoverable from the user's
// point of view: the job record is never mutated before the gateway call
// settles.
func ErrGateway(err error, message string) *AppError {
	return Wrap(err, CodeGatewayError, "payment", message, http.StatusBadGateway)
}

// ErrJobNotFound - the job id does not resolve to any posting, enabled or not.
var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job posting not found",
	http.StatusNotFound,
)

// ErrNotJobOwner - the acting user does not own the posting.
var ErrNotJobOwner = New(
	CodeForbidden,
	"jobs",
	"You do not have permission to modify this job posting",
	http.StatusForbidden,
)

// ErrNoPendingJob - the card-payment flow found no stashed job id in the
// session, so there is nothing to activate.
var ErrNoPendingJob = New(
	CodeValidationFailed,
	"jobs",
	"No pending job found. Please create your job posting again.",
	http.StatusBadRequest,
)

// ErrPaymentDeclined - the gateway rejected the card.
var ErrPaymentDeclined = New(
	CodeGatewayError,
	"payment",
	"Payment failed",
	http.StatusPaymentRequired,
)

// ErrEmailAlreadyExists - email already in use.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidCredentials - wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - invalid or expired token (access, verification).
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
