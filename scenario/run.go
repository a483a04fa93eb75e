package scenario

import (
	"fmt"
	"go-dispatch/person"
	"io"
	"log"
	"strings"
	"unicode/utf8"
)

type Runner struct {
	Out io.Writer
	Log *log.Logger // trace of each resolved call, nil disables it
}

func Run(w io.Writer, s *Scenario) error {
	r := &Runner{Out: w}
	return r.Run(s)
}

// Run prints the banner block, one line per reference with a blank line
// between groups, then "Done.".
func (r *Runner) Run(s *Scenario) error {
	if s == nil {
		return ErrNoScenario
	}
	if r.Out == nil {
		return ErrNoOutput
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Banner != "" {
		rule := strings.Repeat("-", utf8.RuneCountInString(s.Banner))
		_, _ = fmt.Fprintf(r.Out, "%s\n%s\n%s\n\n", rule, s.Banner, rule)
	}
	for i, g := range s.Groups {
		if i > 0 {
			_, _ = fmt.Fprintln(r.Out)
		}
		for _, ref := range g.Refs {
			d, err := ref.Build()
			if err != nil {
				return err
			}
			if r.Log != nil {
				r.Log.Printf("%s as %s -> %s", ref.Kind, ref.Declared(), person.Label(d))
			}
			d.DisplayFullName(r.Out)
		}
	}
	_, _ = fmt.Fprintln(r.Out, "\nDone.")
	return nil
}
