package contact

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r SubmitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("please provide your name"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("please provide your email"),
			is.Email.Error("please provide a valid email"),
		),
		validation.Field(&r.Phone,
			validation.Length(0, 30),
		),
		validation.Field(&r.Message,
			validation.Required.Error("please provide a message"),
			validation.Length(1, 5000),
		),
	)
}
