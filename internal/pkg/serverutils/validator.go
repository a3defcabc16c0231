package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts the first failure
// into a 400 with a readable field message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		first := errs[0]
		return fiber.NewError(
			fiber.StatusBadRequest,
			fmt.Sprintf("field '%s' failed on '%s' validation", first.Field(), first.Tag()),
		)
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}
