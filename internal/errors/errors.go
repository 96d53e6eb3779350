package errors

import "fmt"

// ErrorCode represents an imgup error code.
type ErrorCode string

const (
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"       // bad or missing input item
	ErrUploadFailed       ErrorCode = "UPLOAD_FAILED"       // one image upload failed
	ErrAlbumFailed        ErrorCode = "ALBUM_FAILED"        // album creation failed
	ErrNoUploads          ErrorCode = "NO_UPLOADS"          // zero successful uploads
	ErrCaptureInterrupted ErrorCode = "CAPTURE_INTERRUPTED" // screenshot selection aborted
)

// ImgupError represents a structured error with a code and a user-facing
// message.
type ImgupError struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *ImgupError) Error() string {
	return e.Message
}

// NewInvalidInput creates an error for an unusable input item.
func NewInvalidInput(msg string) *ImgupError {
	return &ImgupError{
		Code:    ErrInvalidInput,
		Message: msg,
	}
}

// NewUploadFailed creates an error for a failed image upload. The failure is
// local to that image; the batch continues.
func NewUploadFailed(file, reason string) *ImgupError {
	return &ImgupError{
		Code:    ErrUploadFailed,
		Message: fmt.Sprintf("Error while uploading %s: %s", file, reason),
	}
}

// NewAlbumFailed creates an error for a failed album creation. Uploaded
// images and their journal entries are not rolled back.
func NewAlbumFailed(reason string) *ImgupError {
	return &ImgupError{
		Code:    ErrAlbumFailed,
		Message: fmt.Sprintf("Error while creating album: %s", reason),
	}
}

// NewNoUploads creates the fatal error for a run where nothing uploaded.
func NewNoUploads() *ImgupError {
	return &ImgupError{
		Code:    ErrNoUploads,
		Message: "No images uploaded.",
	}
}

// NewCaptureInterrupted creates the fatal error for an aborted screenshot
// selection.
func NewCaptureInterrupted() *ImgupError {
	return &ImgupError{
		Code:    ErrCaptureInterrupted,
		Message: "Screenshot interrupted, nothing was uploaded.",
	}
}

// Is checks if an error is an ImgupError with the given code.
func Is(err error, code ErrorCode) bool {
	if iErr, ok := err.(*ImgupError); ok {
		return iErr.Code == code
	}
	return false
}
