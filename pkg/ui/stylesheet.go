package ui

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lichnak/rg3d/pkg/errors"
	"github.com/lichnak/rg3d/pkg/graphics"
)

// Stylesheet YAML format:
//
//	styles:
//	  base:
//	    setters:
//	      - {name: background, value: "#303030"}
//	  button:
//	    base: base
//	    setters:
//	      - {name: foreground, value: white}
//
// String values that parse as colors (hex or SVG names) become
// graphics.Color; floating-point values become float32; everything else
// keeps its decoded type.

type stylesheetFile struct {
	Styles map[string]stylesheetStyle `yaml:"styles"`
}

type stylesheetStyle struct {
	Base    string             `yaml:"base,omitempty"`
	Setters []stylesheetSetter `yaml:"setters"`
}

type stylesheetSetter struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// LoadStylesheet parses a YAML stylesheet and resolves base-style
// references into linked Style chains. Unknown or cyclic base
// references are errors.
func LoadStylesheet(r io.Reader) (map[string]*Style, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("ui.LoadStylesheet", errors.KindStyle, err)
	}

	var file stylesheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New("ui.LoadStylesheet", errors.KindStyle,
			fmt.Errorf("failed to parse stylesheet: %w", err))
	}

	resolved := make(map[string]*Style, len(file.Styles))
	resolving := make(map[string]bool)

	var resolve func(name string) (*Style, error)
	resolve = func(name string) (*Style, error) {
		if style, ok := resolved[name]; ok {
			return style, nil
		}
		def, ok := file.Styles[name]
		if !ok {
			return nil, fmt.Errorf("unknown base style %q", name)
		}
		if resolving[name] {
			return nil, fmt.Errorf("cyclic base reference through %q", name)
		}
		resolving[name] = true
		defer delete(resolving, name)

		style := NewStyle()
		if def.Base != "" {
			base, err := resolve(def.Base)
			if err != nil {
				return nil, err
			}
			style.WithBase(base)
		}
		for _, setter := range def.Setters {
			style.AddSetter(setter.Name, convertStyleValue(setter.Value))
		}
		resolved[name] = style
		return style, nil
	}

	for name := range file.Styles {
		if _, err := resolve(name); err != nil {
			return nil, errors.New("ui.LoadStylesheet", errors.KindStyle, err)
		}
	}
	return resolved, nil
}

func convertStyleValue(value any) any {
	switch v := value.(type) {
	case string:
		if color, err := graphics.ParseColor(v); err == nil {
			return color
		}
		return v
	case float64:
		return float32(v)
	default:
		return value
	}
}
