package person

import (
	"fmt"
	"io"
)

// Displayer is the display capability shared by Person and its derived types.
type Displayer interface {
	DisplayFullName(w io.Writer)
}

// class is the late-bound method table of one type. Tables are package
// level and never modified; a Person only holds a pointer to one.
type class struct {
	label string
}

var (
	personClass     = &class{label: "Person"}
	employeeClass   = &class{label: "Employee"}
	contractorClass = &class{label: "Contractor"}
)

func (c *class) display(p *Person, w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s: %s %s\n", c.label, p.firstName, p.lastName)
}

type Person struct {
	firstName string
	lastName  string
	class     *class // table consulted through *Person, set once by the constructor
}

func newPerson(fn, ln string, c *class) Person {
	return Person{firstName: fn, lastName: ln, class: c}
}

func New(fn, ln string) *Person {
	p := newPerson(fn, ln, personClass)
	return &p
}

func (p *Person) FirstName() string {
	return p.firstName
}

func (p *Person) LastName() string {
	return p.lastName
}

// DisplayFullName resolves through the table of the runtime class. Derived
// types that override install their table here; types that hide do not.
func (p *Person) DisplayFullName(w io.Writer) {
	p.vtable().display(p, w)
}

func (p *Person) vtable() *class {
	if p.class == nil {
		return personClass
	}
	return p.class
}

func (p *Person) label() string {
	return p.vtable().label
}
