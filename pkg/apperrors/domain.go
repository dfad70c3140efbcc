package apperrors

import (
	"net/http"
)

// Factories and predeclared errors for the moderation, matching and auth
// domains. Services return these; handlers map them via HandleError.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error, domain string) *AppError {
	return Wrap(err, CodeNotFound, domain, "Resource not found", http.StatusNotFound)
}

// ErrConflict reports a uniqueness violation (409).
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation reports a request that is well-formed but not allowed
// in the entity's current state (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrUnauthenticated - operation requires a valid session and none was
// presented (or it expired).
var ErrUnauthenticated = New(
	CodeUnauthorized,
	"auth",
	"Authentication required",
	http.StatusUnauthorized,
)

// ErrForbidden - caller is authenticated but the role does not permit the
// operation.
var ErrForbidden = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrAccessDenied - login attempt with an email that is not whitelisted.
var ErrAccessDenied = New(
	CodeAccessDenied,
	"auth",
	"Email is not registered in the resident whitelist",
	http.StatusForbidden,
)

// ErrInvalidCredentials - admin login with a wrong username/password pair.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrWhitelistDuplicate - email already present in the whitelist.
var ErrWhitelistDuplicate = New(
	CodeConflict,
	"whitelist",
	"Email is already whitelisted",
	http.StatusConflict,
)

// ErrDuplicateFile - the uploaded file content is already attached to a
// different CV. Surfaced as a validation failure, never a silent overwrite.
var ErrDuplicateFile = New(
	CodeValidationFailed,
	"file",
	"An identical file is already attached to another CV",
	http.StatusBadRequest,
)

// ErrFileMissing - a CV references a storage object that no longer exists.
var ErrFileMissing = New(
	CodeNotFound,
	"file",
	"Referenced file is missing from storage",
	http.StatusNotFound,
)
