package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSpecies = errors.New("invalid species")

// Species is the kind of animal sheltered. It is persisted as its String form.
type Species int

const (
	SpeciesDog Species = iota + 1
	SpeciesCat
)

var speciesNames = map[Species]string{
	SpeciesDog: "Dog",
	SpeciesCat: "Cat",
}

// AllSpecies returns every known species in declaration order.
func AllSpecies() []Species {
	return []Species{SpeciesDog, SpeciesCat}
}

func (s Species) String() string {
	if name, ok := speciesNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Species(%d)", int(s))
}

func (s Species) IsValid() bool {
	_, ok := speciesNames[s]
	return ok
}

// ParseSpecies is the inverse of String. Matching is case-insensitive.
func ParseSpecies(value string) (Species, error) {
	value = strings.TrimSpace(value)
	for species, name := range speciesNames {
		if strings.EqualFold(name, value) {
			return species, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSpecies, value)
}

func (s Species) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpecies, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Species) UnmarshalText(text []byte) error {
	parsed, err := ParseSpecies(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
