package scenario

import (
	"fmt"
	"github.com/buger/jsonparser"
	"math"
)

type fieldFunc func(key string, value []byte, dataType jsonparser.ValueType) error

func parseJSON(data []byte) (*Scenario, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	s := &Scenario{}
	err = eachField(value, dataType, func(key string, value []byte, dataType jsonparser.ValueType) error {
		switch key {
		case "banner":
			v, err := stringValue(value, dataType)
			if err != nil {
				return fmt.Errorf("banner: %w", err)
			}
			s.Banner = v
		case "groups":
			return eachElement(value, dataType, func(i int, value []byte, dataType jsonparser.ValueType) error {
				g, err := parseGroup(value, dataType)
				if err != nil {
					return fmt.Errorf("group %d: %w", i, err)
				}
				s.Groups = append(s.Groups, g)
				return nil
			})
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func parseGroup(data []byte, dataType jsonparser.ValueType) (Group, error) {
	g := Group{}
	err := eachField(data, dataType, func(key string, value []byte, dataType jsonparser.ValueType) error {
		if key != "refs" {
			return fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
		return eachElement(value, dataType, func(i int, value []byte, dataType jsonparser.ValueType) error {
			ref, err := parseRef(value, dataType)
			if err != nil {
				return fmt.Errorf("ref %d: %w", i, err)
			}
			g.Refs = append(g.Refs, ref)
			return nil
		})
	})
	return g, err
}

func parseRef(data []byte, dataType jsonparser.ValueType) (Ref, error) {
	ref := Ref{}
	texts := map[string]*string{
		"first":   &ref.First,
		"last":    &ref.Last,
		"company": &ref.Company,
	}
	err := eachField(data, dataType, func(key string, value []byte, dataType jsonparser.ValueType) error {
		var err error
		switch key {
		case "kind":
			var v string
			v, err = stringValue(value, dataType)
			ref.Kind = Kind(v)
		case "as":
			var v string
			v, err = stringValue(value, dataType)
			ref.As = Kind(v)
		case "hire_year":
			ref.HireYear, err = hireYear(value, dataType)
		default:
			dst, ok := texts[key]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownField, key)
			}
			*dst, err = stringValue(value, dataType)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		return nil
	})
	return ref, err
}

func hireYear(value []byte, dataType jsonparser.ValueType) (uint16, error) {
	if dataType != jsonparser.Number {
		return 0, fmt.Errorf("%w: want number, got %s", ErrBadValue, dataType)
	}
	hy, err := jsonparser.ParseInt(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadValue, value)
	}
	if hy < 0 || hy > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d out of range", ErrBadValue, hy)
	}
	return uint16(hy), nil
}

func stringValue(value []byte, dataType jsonparser.ValueType) (string, error) {
	if dataType != jsonparser.String {
		return "", fmt.Errorf("%w: want string, got %s", ErrBadValue, dataType)
	}
	return jsonparser.ParseString(value)
}

// eachField calls fn for every key of a JSON object; any other value is
// rejected.
func eachField(data []byte, dataType jsonparser.ValueType, fn fieldFunc) error {
	if dataType != jsonparser.Object {
		return fmt.Errorf("%w: want object, got %s", ErrBadValue, dataType)
	}
	return jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		return fn(string(key), value, dataType)
	})
}

func eachElement(data []byte, dataType jsonparser.ValueType, fn func(i int, value []byte, dataType jsonparser.ValueType) error) error {
	if dataType != jsonparser.Array {
		return fmt.Errorf("%w: want array, got %s", ErrBadValue, dataType)
	}
	var (
		i       int
		itemErr error
	)
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if itemErr != nil {
			return
		}
		if err != nil {
			itemErr = err
			return
		}
		itemErr = fn(i, value, dataType)
		i++
	})
	if itemErr != nil {
		return itemErr
	}
	return err
}
