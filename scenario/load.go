package scenario

import (
	"bytes"
	"fmt"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
	"os"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

var extFormats = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
	".toml": FormatTOML,
}

func FormatOf(path string) (Format, error) {
	f, ok := extFormats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return f, nil
}

func Load(path string) (*Scenario, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte, format Format) (*Scenario, error) {
	s := &Scenario{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.UnmarshalStrict(data, s)
	case FormatJSON:
		s, err = parseJSON(data)
	case FormatTOML:
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
