package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidInput indicates that the caller supplied no usable input (missing file, wrong media type).
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidFormat indicates that an uploaded file could not be parsed into the expected structure.
var ErrInvalidFormat = errors.New("invalid format")

// Upload failures. Each wraps ErrInvalidInput or ErrInvalidFormat and carries
// the message shown to the uploader.
var (
	ErrNoFileUploaded   = fmt.Errorf("%w: No file uploaded", ErrInvalidInput)
	ErrInvalidFileType  = fmt.Errorf("%w: Invalid file type", ErrInvalidInput)
	ErrInvalidCSVHeader = fmt.Errorf("%w: Invalid CSV headers", ErrInvalidFormat)
	ErrInvalidFileData  = fmt.Errorf("%w: Invalid file data", ErrInvalidFormat)
)
