package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"go-dispatch/person"
)

type Kind string

const (
	KindPerson     Kind = "person"
	KindEmployee   Kind = "employee"
	KindContractor Kind = "contractor"
)

var (
	ErrUnknownKind   = errors.New("unknown kind")
	ErrBadReference  = errors.New("reference type does not match object")
	ErrMissingName   = errors.New("missing name")
	ErrUnknownFormat = errors.New("unknown scenario format")
	ErrUnknownField  = errors.New("unknown field")
	ErrBadValue      = errors.New("unexpected value type")
	ErrNoScenario    = errors.New("nil scenario")
	ErrNoOutput      = errors.New("runner has no output")
)

// Ref is one display call: the object to construct and the declared type of
// the reference the call is made through. An empty As means the object's own
// type.
type Ref struct {
	Kind     Kind   `yaml:"kind" toml:"kind"`
	First    string `yaml:"first" toml:"first"`
	Last     string `yaml:"last" toml:"last"`
	HireYear uint16 `yaml:"hire_year,omitempty" toml:"hire_year,omitempty"`
	Company  string `yaml:"company,omitempty" toml:"company,omitempty"`
	As       Kind   `yaml:"as,omitempty" toml:"as,omitempty"`
}

type Group struct {
	Refs []Ref `yaml:"refs" toml:"refs"`
}

type Scenario struct {
	Banner string  `yaml:"banner" toml:"banner"`
	Groups []Group `yaml:"groups" toml:"groups"`
}

//go:embed default.yaml
var defaultScenario []byte

// Default returns the built-in call sequence: a Person, an Employee and a
// Contractor through their own types, then the same two through Person.
func Default() (*Scenario, error) {
	return Parse(defaultScenario, FormatYAML)
}

func (k Kind) valid() bool {
	switch k {
	case KindPerson, KindEmployee, KindContractor:
		return true
	}
	return false
}

func (r Ref) Declared() Kind {
	if r.As == "" {
		return r.Kind
	}
	return r.As
}

func (r Ref) Validate() error {
	if !r.Kind.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	if as := r.Declared(); !as.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, as)
	} else if as != r.Kind && as != KindPerson {
		return fmt.Errorf("%w: %s as %s", ErrBadReference, r.Kind, as)
	}
	if r.First == "" || r.Last == "" {
		return fmt.Errorf("%w: %q %q", ErrMissingName, r.First, r.Last)
	}
	return nil
}

// Build constructs the object and returns a handle of the declared type.
func (r Ref) Build() (person.Displayer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	upcast := r.Declared() == KindPerson
	switch r.Kind {
	case KindEmployee:
		e := person.NewEmployee(r.First, r.Last, r.HireYear)
		if upcast {
			return e.AsPerson(), nil
		}
		return e, nil
	case KindContractor:
		c := person.NewContractor(r.First, r.Last, r.Company)
		if upcast {
			return c.AsPerson(), nil
		}
		return c, nil
	default:
		return person.New(r.First, r.Last), nil
	}
}

func (s *Scenario) Validate() error {
	for i, g := range s.Groups {
		for j, r := range g.Refs {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("group %d ref %d: %w", i, j, err)
			}
		}
	}
	return nil
}
