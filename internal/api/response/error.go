package response

import "fmt"

// Error is the envelope written for failed requests.
type Error struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Extras  ErrorExtras `json:"extras"`
}

type ErrorExtras struct {
	Message string `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Extras.Message)
}

func NewError(code int, message string) Error {
	return Error{
		Success: false,
		Code:    code,
		Extras:  ErrorExtras{Message: message},
	}
}
