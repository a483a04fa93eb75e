package person

type labeler interface {
	label() string
}

// Label reports the type label a call through d resolves to, or "" when d
// is not one of this package's types.
func Label(d Displayer) string {
	if l, ok := d.(labeler); ok {
		return l.label()
	}
	return ""
}
