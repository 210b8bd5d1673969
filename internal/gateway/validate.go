package gateway

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignupInput is the body of POST /signup.
type SignupInput struct {
	Username string `json:"username" validate:"notblank,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TopicInput is the body of POST /topics and PUT /topics/{id}. Slug is
// derived from Title when empty.
type TopicInput struct {
	Title       string `json:"title" validate:"notblank,max=120"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description"`
}

// PostInput is the body of POST /posts. Every post belongs to a topic.
type PostInput struct {
	Title   string `json:"title" validate:"notblank,max=300"`
	Body    string `json:"body" validate:"notblank"`
	TopicID int64  `json:"topicId" validate:"gt=0"`
}

// PostUpdate is the body of PUT /posts/{id}.
type PostUpdate struct {
	Title string `json:"title" validate:"notblank,max=300"`
	Body  string `json:"body" validate:"notblank"`
}

type commentInput struct {
	Body string `json:"body" validate:"notblank"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validateNotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateNotBlank rejects strings that are empty after trimming.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// check validates in and converts a failure into a ValidationFailed error
// for op, so nothing is sent for input the backend would refuse anyway.
func (c *Client) check(op string, in any) error {
	err := c.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Category: CategoryValidationFailed, Op: op, Message: err.Error(), Err: err}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return &Error{Category: CategoryValidationFailed, Op: op, Message: strings.Join(msgs, "; "), Err: err}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "gt":
		return fe.Field() + " must be set"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}

// Slugify derives a topic slug: lower case with spaces turned into dashes.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "-")
}
