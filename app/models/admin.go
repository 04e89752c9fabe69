package models

import "fmt"

// Validate checks if the admin record meets all validation requirements
func (a *Admin) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
