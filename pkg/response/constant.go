package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "Something went wrong. Please try again later."

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
