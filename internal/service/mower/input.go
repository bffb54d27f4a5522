package mower

import (
	"github.com/lawndon/lawndon-backend/internal/domain"
)

// CreateInput holds the parameters for creating a mower listing.
type CreateInput struct {
	Username  string
	AccountID string
	Title     string
	Category  string
	Format    string
	Country   string
	CutSize   float64
	IsStripe  bool
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

// MakeReviewInput holds the parameters for appending a review. The reviewer
// name is the calling profile's username.
type MakeReviewInput struct {
	Username string
	MowerID  string
	Content  string
	Test     string
	Rate     float64
}

// Validate checks all fields and collects all errors.
func (i *MakeReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.MowerID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInfoInput holds the parameters for overwriting the external link and
// main photo.
type UpdateInfoInput struct {
	Username  string
	MowerID   string
	Link      string
	MainPhoto string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInfoInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.MowerID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ManageOfferInput holds the parameters for the offer sub-collection
// operation. Option selects the branch: "create" appends a new offer named
// after the calling profile, "like" bumps the counter on CollID, anything
// else deletes CollID.
type ManageOfferInput struct {
	Username    string
	MowerID     string
	Option      string
	Marketplace string
	Format      string
	Cost        float64
	Cords       domain.Cord
	CollID      string
}

// Validate checks all fields and collects all errors.
func (i *ManageOfferInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.MowerID == "" {
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
