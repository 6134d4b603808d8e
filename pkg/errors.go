package pkg

// AppError is the error shape handlers translate domain failures into.
// Code is a stable machine-readable identifier; Message is safe to expose.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError wraps an underlying error with a stable code and HTTP status.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the JSON body sent to clients. The wrapped cause never leaks.
type HTTPError struct {
	Error HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: HTTPErrorBody{Code: e.Code, Message: e.Message}}
}
