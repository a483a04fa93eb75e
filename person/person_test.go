package person

import (
	"bytes"
	"reflect"
	"testing"
)

func display(d Displayer) string {
	var buf bytes.Buffer
	d.DisplayFullName(&buf)
	return buf.String()
}

func TestDisplayFullName(t *testing.T) {
	employee := NewEmployee("Bradley", "Jones", 1983)
	contractor := NewContractor("Carolyn", "Curry", "Microsoft")

	tests := []struct {
		name string
		ref  Displayer
		want string
	}{
		{"person", New("Amir", "Rad"), "Person: Amir Rad\n"},
		{"employee as employee", employee, "Employee: Bradley Jones\n"},
		{"contractor as contractor", contractor, "Contractor: Carolyn Curry\n"},
		{"employee as person", employee.AsPerson(), "Employee: Bradley Jones\n"},
		{"contractor as person", contractor.AsPerson(), "Person: Carolyn Curry\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := display(tt.ref); got != tt.want {
				t.Errorf("DisplayFullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseHandleSharesState(t *testing.T) {
	c := NewContractor("Carolyn", "Curry", "Microsoft")
	p := c.AsPerson()
	if p.FirstName() != "Carolyn" || p.LastName() != "Curry" {
		t.Fatalf("AsPerson() names = %q %q", p.FirstName(), p.LastName())
	}
	if c.Company != "Microsoft" {
		t.Errorf("Company = %q, want Microsoft", c.Company)
	}

	e := NewEmployee("Bradley", "Jones", 1983)
	if e.AsPerson() != &e.Person {
		t.Error("AsPerson() must return the embedded Person")
	}
	if e.HireYear != 1983 {
		t.Errorf("HireYear = %d, want 1983", e.HireYear)
	}
}

func TestBindingFixedPerClass(t *testing.T) {
	e := NewEmployee("Bradley", "Jones", 1983)
	c := NewContractor("Carolyn", "Curry", "Microsoft")

	for i := 0; i < 3; i++ {
		if got := display(c.AsPerson()); got != "Person: Carolyn Curry\n" {
			t.Fatalf("call %d: contractor through Person = %q", i, got)
		}
		if got := display(e.AsPerson()); got != "Employee: Bradley Jones\n" {
			t.Fatalf("call %d: employee through Person = %q", i, got)
		}
	}

	// A second instance of either class must not disturb the first.
	NewEmployee("X", "Y", 2000)
	NewContractor("X", "Y", "Z")
	if got := Label(c.AsPerson()); got != "Person" {
		t.Errorf("Label(contractor as Person) = %q, want Person", got)
	}
	if got := Label(e.AsPerson()); got != "Employee" {
		t.Errorf("Label(employee as Person) = %q, want Employee", got)
	}
}

func TestCopyResolvesToOwnNames(t *testing.T) {
	e := NewEmployee("Bradley", "Jones", 1983)
	e2 := *e
	e2.Person = newPerson("Dana", "Fox", employeeClass)
	if got := display(e.AsPerson()); got != "Employee: Bradley Jones\n" {
		t.Errorf("original through Person = %q", got)
	}
	if got := display(e2.AsPerson()); got != "Employee: Dana Fox\n" {
		t.Errorf("copy through Person = %q", got)
	}

	e3 := *e
	if got := display(e3.AsPerson()); got != "Employee: Bradley Jones\n" {
		t.Errorf("plain copy through Person = %q", got)
	}
	if e3.AsPerson() == e.AsPerson() {
		t.Error("copy must not share the embedded Person")
	}
}

func TestLabel(t *testing.T) {
	e := NewEmployee("Bradley", "Jones", 1983)
	c := NewContractor("Carolyn", "Curry", "Microsoft")
	tests := []struct {
		ref  Displayer
		want string
	}{
		{New("Amir", "Rad"), "Person"},
		{&Person{}, "Person"},
		{e, "Employee"},
		{e.AsPerson(), "Employee"},
		{c, "Contractor"},
		{c.AsPerson(), "Person"},
	}
	for _, tt := range tests {
		if got := Label(tt.ref); got != tt.want {
			t.Errorf("Label(%T %s) = %q, want %q", tt.ref, display(tt.ref), got, tt.want)
		}
	}
}

func TestExportedMethodSet(t *testing.T) {
	want := map[string]bool{"DisplayFullName": true, "FirstName": true, "LastName": true}
	typ := reflect.TypeOf(&Person{})
	for i := 0; i < typ.NumMethod(); i++ {
		if name := typ.Method(i).Name; !want[name] {
			t.Errorf("*Person exports %s, which could change how calls resolve", name)
		}
	}
	if typ.NumMethod() != len(want) {
		t.Errorf("*Person has %d exported methods, want %d", typ.NumMethod(), len(want))
	}
}
