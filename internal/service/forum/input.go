package forum

import (
	"github.com/lawndon/lawndon-backend/internal/domain"
)

// CreateInput holds the parameters for creating a forum.
type CreateInput struct {
	Username    string
	AccountID   string
	Title       string
	Category    string
	Format      string
	Country     string
	Description string
	Status      string
	Region      string
	Cords       domain.Cord
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

// ManageImageInput holds the parameters for the image sub-collection
// operation. Option selects the branch: "create" appends a new image,
// "update" overwrites the status of CollID, anything else deletes CollID.
type ManageImageInput struct {
	Username string
	ForumID  string
	Option   string
	Text     string
	Level    string
	Format   string
	Status   string
	PhotoURL string
	CollID   string
}

// Validate checks all fields and collects all errors.
func (i *ManageImageInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.ForumID == "" {
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

// UpdateProgressInput holds the parameters for overwriting the progress
// value.
type UpdateProgressInput struct {
	Username string
	ForumID  string
	Progress float64
}

// Validate checks all fields and collects all errors.
func (i *UpdateProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.ForumID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ManageSourceInput holds the parameters for the source sub-collection
// operation. Option selects the branch: "create" appends a new source named
// after the calling profile, "like" bumps the counter on CollID, anything
// else deletes CollID.
type ManageSourceInput struct {
	Username string
	ForumID  string
	Option   string
	Title    string
	Category string
	URL      string
	CollID   string
}

// Validate checks all fields and collects all errors.
func (i *ManageSourceInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.ForumID == "" {
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
