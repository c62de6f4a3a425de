package apperrors

import "net/http"

// --- Auth ---

// ErrInvalidCredentials is deliberately the same for unknown email and wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect credentials. Please try again.",
	http.StatusUnauthorized,
)

// --- Skaters ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"skater",
	"Email already registered",
	http.StatusConflict,
)

var ErrSkaterNotFound = New(
	CodeNotFound,
	"skater",
	"Skater not found",
	http.StatusNotFound,
)

// --- Uploads ---

var ErrPhotoRequired = New(
	CodeValidationFailed,
	"upload",
	"No photo was sent",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
