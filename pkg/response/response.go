package response

import "errors"

type Response struct {
	ResponseError `json:"error,omitzero"`
}

type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

//Error Codes
type ErrCode string

var (
	FAILED_REQUEST    ErrCode = "REQUEST_FAILED"
	BAD_REQUEST       ErrCode = "FAILED_TO_DECODE"
	NOT_FOUND         ErrCode = "NOT_FOUND"
	VALIDATION_FAILED ErrCode = "VALIDATION_FAILED"
	NOTE_REQUIRED     ErrCode = "NOTE_REQUIRED"
	BAD_STATUS        ErrCode = "UNKNOWN_STATUS"
	BAD_DATE          ErrCode = "MALFORMED_DATE"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrNoteRequired = errors.New("note is required")
	ErrBadStatus    = errors.New("unknown status value")
	ErrBadDate      = errors.New("malformed date")
)

func Error(code, msg string) Response {
	return Response{
		ResponseError: ResponseError{
			Code:    code,
			Message: msg,
		},
	}
}
