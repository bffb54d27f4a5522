package mowing

import (
	"github.com/lawndon/lawndon-backend/internal/domain"
)

// CreateInput holds the parameters for creating a mowing event. Activity is
// the creator's member activity state.
type CreateInput struct {
	Username  string
	AccountID string
	Title     string
	Category  string
	Level     string
	Square    float64
	Date      string
	Time      string
	Region    string
	Cords     domain.Cord
	Borders   []domain.Cord
	Activity  string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.AccountID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ManageStatusInput holds the parameters for the membership operation.
// Option selects the branch: "join" adds the caller as a member and links
// the mowing into their profile, "update" rewrites the caller's activity
// state, anything else removes both the member and the linkage entry.
type ManageStatusInput struct {
	Username string
	MowingID string
	Option   string
	Activity string
}

// Validate checks all fields and collects all errors.
func (i *ManageStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.MowingID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Option == "" {
		errs = append(errs, domain.FieldError{Field: "option", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePhotoInput holds the parameters for overwriting the main photo.
type UpdatePhotoInput struct {
	Username  string
	MowingID  string
	MainPhoto string
}

// Validate checks all fields and collects all errors.
func (i *UpdatePhotoInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.MowingID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ManageTopicInput holds the parameters for the topic sub-collection
// operation. Option selects the branch: "create" appends a new topic
// authored by the caller, "support" bumps the counter on CollID, anything
// else deletes CollID.
type ManageTopicInput struct {
	Username string
	MowingID string
	Option   string
	Text     string
	Category string
	CollID   string
}

// Validate checks all fields and collects all errors.
func (i *ManageTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.MowingID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Option == "" {
		errs = append(errs, domain.FieldError{Field: "option", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
