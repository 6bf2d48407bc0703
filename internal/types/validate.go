//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Validate checks that name and headline are present.
func (b *Basics) Validate() error {
	validate := validator.New()
	return validate.Struct(b)
}

// Validate checks that the skill has a name.
func (s *Skill) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Validate checks that the language has a name.
func (l *Language) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}
