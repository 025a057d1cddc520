package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope around every successful body.
type Response[T any] struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  T    `json:"extras"`
}

func NewResponse[T any](success bool, code int, extras T) Response[T] {
	return Response[T]{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponse returns a 200 JSON response with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	SuccessResponseStatus(c, http.StatusOK, extras)
}

// SuccessResponseStatus returns a JSON response with a success status other than 200
func SuccessResponseStatus(c *gin.Context, code int, extras any) {
	c.JSON(code, NewResponse(true, code, extras))
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, NewError(code, message))
}
