package group

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateGroupRequest is the administrative creation form. When Slug is
// empty one is generated from the title.
type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (r CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Slug, validation.Length(0, 200)),
	)
}

// UpdateDescriptionRequest edits the only mutable group field.
type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}
