package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// PostForm is the create/edit form: required text, optional group slug.
// The image arrives separately as a multipart file.
type PostForm struct {
	Text  string `json:"text" form:"text"`
	Group string `json:"group" form:"group"`
}

func (f PostForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text,
			validation.Required.Error("text is required"),
		),
	)
}

// ImageUpload is a decoded multipart image ready for the media store.
type ImageUpload struct {
	Data        []byte
	ContentType string
}

// FormSchema is the statically declared field schema returned with form
// bundles, replacing runtime-determined field widgets.
type FormSchema struct {
	Fields []FormField `json:"fields"`
}

type FormField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Help     string `json:"help,omitempty"`
}

// PostFormSchema describes the post create/edit form.
func PostFormSchema() FormSchema {
	return FormSchema{
		Fields: []FormField{
			{Name: "text", Type: "text", Required: true, Help: "Write your text here"},
			{Name: "group", Type: "choice", Required: false, Help: "You can pick a group"},
			{Name: "image", Type: "image", Required: false},
		},
	}
}

// CommentFormSchema describes the comment form shown on the detail page.
func CommentFormSchema() FormSchema {
	return FormSchema{
		Fields: []FormField{
			{Name: "text", Type: "text", Required: true, Help: "Write a comment"},
		},
	}
}
