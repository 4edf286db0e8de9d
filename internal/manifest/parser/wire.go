package parser

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	pkgmanifest "github.com/goliatone/go-wrapgen/pkg/manifest"
)

// Wire types mirror the compiler's manifest layout. Properties and events
// accept two spellings: a bare name string, or an object carrying extra
// metadata. Both decoders funnel through the same structs.

type wireManifest struct {
	Components []wireComponent `json:"components" yaml:"components"`
}

type wireComponent struct {
	Tag        string         `json:"tag" yaml:"tag"`
	Docs       string         `json:"docs,omitempty" yaml:"docs,omitempty"`
	Internal   bool           `json:"internal,omitempty" yaml:"internal,omitempty"`
	Properties []wireProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
	Events     []wireEvent    `json:"events,omitempty" yaml:"events,omitempty"`
}

func (wc wireComponent) component() pkgmanifest.Component {
	c := pkgmanifest.Component{
		Tag:      wc.Tag,
		Docs:     wc.Docs,
		Internal: wc.Internal,
	}
	for _, wp := range wc.Properties {
		c.Properties = append(c.Properties, pkgmanifest.Property(wp))
	}
	for _, we := range wc.Events {
		c.Events = append(c.Events, pkgmanifest.Event(we))
	}
	return c
}

type wireProperty pkgmanifest.Property

func (wp *wireProperty) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*wp = wireProperty{Name: name}
		return nil
	}

	var full struct {
		Name      string `json:"name"`
		Attribute string `json:"attribute"`
		Docs      string `json:"docs"`
	}
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*wp = wireProperty(full)
	return nil
}

func (wp *wireProperty) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*wp = wireProperty{Name: name}
		return nil
	case yaml.MappingNode:
		var full struct {
			Name      string `yaml:"name"`
			Attribute string `yaml:"attribute"`
			Docs      string `yaml:"docs"`
		}
		if err := node.Decode(&full); err != nil {
			return err
		}
		*wp = wireProperty(full)
		return nil
	default:
		return fmt.Errorf("property must be a name or a mapping, got yaml kind %d", node.Kind)
	}
}

type wireEvent pkgmanifest.Event

func (we *wireEvent) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*we = wireEvent{Name: name}
		return nil
	}

	var full struct {
		Name string `json:"name"`
		Docs string `json:"docs"`
	}
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*we = wireEvent(full)
	return nil
}

func (we *wireEvent) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*we = wireEvent{Name: name}
		return nil
	case yaml.MappingNode:
		var full struct {
			Name string `yaml:"name"`
			Docs string `yaml:"docs"`
		}
		if err := node.Decode(&full); err != nil {
			return err
		}
		*we = wireEvent(full)
		return nil
	default:
		return fmt.Errorf("event must be a name or a mapping, got yaml kind %d", node.Kind)
	}
}
