package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidGender = errors.New("invalid gender")

// Gender of a sheltered animal. Persisted as its String form.
type Gender int

const (
	GenderMale Gender = iota + 1
	GenderFemale
)

var genderNames = map[Gender]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
}

func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

func (g Gender) IsValid() bool {
	_, ok := genderNames[g]
	return ok
}

// ParseGender is the inverse of String. Matching is case-insensitive.
func ParseGender(value string) (Gender, error) {
	value = strings.TrimSpace(value)
	for gender, name := range genderNames {
		if strings.EqualFold(name, value) {
			return gender, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGender, value)
}

func (g Gender) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGender, int(g))
	}
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
