// Package validator shares one go-playground validator between the service
// layer and the HTTP client.
package validator

import (
	"ctchen222/three-in-a-row/internal/game"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("boardsize", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Int && game.ValidSize(int(fl.Field().Int()))
	})
}

// Struct validates s against its validate tags.
func Struct(s any) error {
	return validate.Struct(s)
}
