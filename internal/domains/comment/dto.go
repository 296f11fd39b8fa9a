package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CommentForm is the comment creation form.
type CommentForm struct {
	Text string `json:"text" form:"text"`
}

func (f CommentForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text,
			validation.Required.Error("text is required"),
		),
	)
}
