package authsdk

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Messages keyed by "<Field>.<tag>".
var registerMessages = map[string]string{
	"Name.required":     "Name should not be empty",
	"Email.required":    "Email should not be empty",
	"Email.email":       "Please provide a valid email address",
	"Password.required": "Password should not be empty",
	"Password.min":      "Password must be at least 8 characters long",
}

var loginMessages = map[string]string{
	"Email.required":    "Email should not be empty.",
	"Email.email":       "Please provide a valid email address.",
	"Password.required": "Password should not be empty.",
}

// Validate returns one message per invalid field in declaration order, or nil.
func (r RegisterRequest) Validate() []string {
	return validateStruct(r, registerMessages)
}

// Validate returns one message per invalid field in declaration order, or nil.
func (r LoginRequest) Validate() []string {
	return validateStruct(r, loginMessages)
}

// TypeMessage is the message for a field that arrived with the wrong JSON
// type, matching what the field's own rules would say.
func (r RegisterRequest) TypeMessage(field string) string {
	switch field {
	case "name":
		return "Name must be a string"
	case "email":
		return registerMessages["Email.email"]
	case "password":
		return "Password must be a string"
	}
	return ""
}

// TypeMessage is the message for a field that arrived with the wrong JSON type.
func (r LoginRequest) TypeMessage(field string) string {
	switch field {
	case "email":
		return loginMessages["Email.email"]
	case "password":
		return "Password must be a string."
	}
	return ""
}

func validateStruct(v any, messages map[string]string) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return out
}
