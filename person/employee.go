package person

import "io"

type Employee struct {
	Person
	HireYear uint16
}

// NewEmployee overrides DisplayFullName, so a *Person handle to the result
// prints the Employee label.
func NewEmployee(fn, ln string, hy uint16) *Employee {
	return &Employee{Person: newPerson(fn, ln, employeeClass), HireYear: hy}
}

func (e *Employee) AsPerson() *Person {
	return &e.Person
}

func (e *Employee) DisplayFullName(w io.Writer) {
	employeeClass.display(&e.Person, w)
}

func (e *Employee) label() string {
	return employeeClass.label
}
