package person

import "io"

type Contractor struct {
	Person
	Company string
}

// NewContractor keeps the Person table in the base, so Contractor's
// DisplayFullName hides rather than overrides.
func NewContractor(fn, ln, c string) *Contractor {
	return &Contractor{Person: newPerson(fn, ln, personClass), Company: c}
}

func (c *Contractor) AsPerson() *Person {
	return &c.Person
}

// DisplayFullName is only reached through a *Contractor.
func (c *Contractor) DisplayFullName(w io.Writer) {
	contractorClass.display(&c.Person, w)
}

func (c *Contractor) label() string {
	return contractorClass.label
}
