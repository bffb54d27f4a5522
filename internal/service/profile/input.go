package profile

import (
	"github.com/lawndon/lawndon-backend/internal/domain"
)

// RegisterInput holds the parameters for creating a new account.
type RegisterInput struct {
	Username     string
	SecurityCode string
	TelegramTag  string
	Region       string
	Cords        domain.Cord
	ActivityDay  string
	MainPhoto    string
}

// Validate checks all fields and collects all errors.
func (i *RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.SecurityCode == "" {
		errs = append(errs, domain.FieldError{Field: "security_code", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdatePersonalInfoInput holds the parameters for updating username and photo.
type UpdatePersonalInfoInput struct {
	AccountID string
	Username  string
	MainPhoto string
}

// Validate checks all fields and collects all errors.
func (i *UpdatePersonalInfoInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == "" {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateGeoInfoInput holds the parameters for updating region and coordinates.
type UpdateGeoInfoInput struct {
	AccountID string
	Region    string
	Cords     domain.Cord
}

// Validate checks all fields and collects all errors.
func (i *UpdateGeoInfoInput) Validate() error {
	if i.AccountID == "" {
		return domain.NewValidationError("account_id", "required")
	}
	return nil
}

// UpdateLawncareInfoInput holds the parameters for updating activity day and rate.
type UpdateLawncareInfoInput struct {
	AccountID   string
	ActivityDay string
	Rate        float64
}

// Validate checks all fields and collects all errors.
func (i *UpdateLawncareInfoInput) Validate() error {
	if i.AccountID == "" {
		return domain.NewValidationError("account_id", "required")
	}
	return nil
}

// UpdateSecurityCodeInput holds the parameters for rotating the login code.
type UpdateSecurityCodeInput struct {
	AccountID    string
	SecurityCode string
}

// Validate checks all fields and collects all errors.
func (i *UpdateSecurityCodeInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == "" {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.SecurityCode == "" {
		errs = append(errs, domain.FieldError{Field: "security_code", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ManageOrderInput holds the parameters for the order sub-collection
// operation. Option selects the branch: "create" appends a new order,
// "accept" marks CollID accepted and adds Cost to the budget, anything
// else deletes CollID.
type ManageOrderInput struct {
	AccountID string
	Option    string
	Msg       string
	Square    float64
	Cost      float64
	Date      string
	CollID    string
}

// Validate checks all fields and collects all errors.
func (i *ManageOrderInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == "" {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.Option == "" {
		errs = append(errs, domain.FieldError{Field: "option", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ManageZoneInput holds the parameters for the zone sub-collection
// operation. Option selects the branch: "create" appends a new zone,
// "delete" removes CollID, "update" overwrites status and photo,
// "like" bumps the like counter.
type ManageZoneInput struct {
	AccountID string
	Option    string
	Title     string
	Category  string
	Cords     domain.Cord
	Square    float64
	Status    string
	PhotoURL  string
	CollID    string
}

// Validate checks all fields and collects all errors.
func (i *ManageZoneInput) Validate() error {
	var errs []domain.FieldError

	if i.AccountID == "" {
		errs = append(errs, domain.FieldError{Field: "account_id", Message: "required"})
	}
	if i.Option == "" {
		errs = append(errs, domain.FieldError{Field: "option", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
