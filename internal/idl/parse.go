package idl

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseFile parses one IDL file. file is the path recorded on the document,
// normally relative to the IDL directory being checked.
func ParseFile(path, file string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, file)
}

// Parse reads one IDL document from r.
func Parse(r io.Reader, file string) (*Document, error) {
	var raw rawDocument
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			raw = rawDocument{}
		} else {
			return nil, fmt.Errorf("%s: failed to parse IDL: %w", file, err)
		}
	}

	doc := &Document{
		File:     file,
		Types:    make(map[string]Type, len(raw.Types)),
		Enums:    make(map[string]Enum, len(raw.Enums)),
		Structs:  make(map[string]Struct, len(raw.Structs)),
		Commands: make(map[string]Command, len(raw.Commands)),
	}
	for name, t := range raw.Types {
		doc.Types[name] = Type{
			Name:                  name,
			CppType:               t.CppType,
			BSONSerializationType: t.BSONSerializationType,
		}
	}
	for name, e := range raw.Enums {
		values := make(map[string]string, len(e.Values))
		for k, v := range e.Values {
			values[k] = string(v)
		}
		doc.Enums[name] = Enum{Name: name, Type: e.Type, Values: values}
	}
	for name, s := range raw.Structs {
		doc.Structs[name] = Struct{Name: name, Fields: namedFields(s.Fields)}
	}
	for name, c := range raw.Commands {
		cmd := Command{
			Name:        name,
			Description: c.Description,
			Namespace:   c.Namespace,
			APIVersion:  string(c.APIVersion),
			ReplyType:   c.ReplyType,
			Fields:      namedFields(c.Fields),
		}
		if c.CommandName != "" {
			cmd.Name = c.CommandName
		}
		if c.Strict != nil {
			cmd.Strict = *c.Strict
		}
		if c.Type != nil {
			cmd.Type = *c.Type
		}
		if c.AccessCheck != nil {
			ac, err := c.AccessCheck.convert()
			if err != nil {
				return nil, fmt.Errorf("%s: command %s: %w", file, cmd.Name, err)
			}
			cmd.AccessCheck = ac
		}
		doc.Commands[cmd.Name] = cmd
	}
	return doc, nil
}

func namedFields(raw map[string]Field) map[string]Field {
	out := make(map[string]Field, len(raw))
	for name, f := range raw {
		f.Name = name
		out[name] = f
	}
	return out
}

// flexScalar accepts any YAML scalar (quoted or not) as its string form, so
// `api_version: 1` and `api_version: "1"` read identically.
type flexScalar string

func (s *flexScalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	*s = flexScalar(value.Value)
	return nil
}

type rawDocument struct {
	Global  map[string]any     `yaml:"global"`
	Imports []string           `yaml:"imports"`
	Types   map[string]rawType `yaml:"types"`
	Enums   map[string]rawEnum `yaml:"enums"`
	Structs map[string]struct {
		Description string           `yaml:"description"`
		Fields      map[string]Field `yaml:"fields"`
	} `yaml:"structs"`
	Commands map[string]rawCommand `yaml:"commands"`
}

type rawType struct {
	Description           string       `yaml:"description"`
	CppType               string       `yaml:"cpp_type"`
	BSONSerializationType stringOrList `yaml:"bson_serialization_type"`
}

type rawEnum struct {
	Description string                `yaml:"description"`
	Type        string                `yaml:"type"`
	Values      map[string]flexScalar `yaml:"values"`
}

type rawCommand struct {
	Description string           `yaml:"description"`
	CommandName string           `yaml:"command_name"`
	Namespace   string           `yaml:"namespace"`
	APIVersion  flexScalar       `yaml:"api_version"`
	Strict      *bool            `yaml:"strict"`
	Type        *TypeRef         `yaml:"type"`
	ReplyType   string           `yaml:"reply_type"`
	Fields      map[string]Field `yaml:"fields"`
	AccessCheck *rawAccessCheck  `yaml:"access_check"`
}

// stringOrList accepts a scalar or a sequence of scalars.
type stringOrList []string

func (s *stringOrList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*s = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	}
	return fmt.Errorf("line %d: expected a scalar or sequence", value.Line)
}

// UnmarshalYAML accepts both the shorthand form (`field: typename`) and the
// full mapping form of a field declaration.
func (f *Field) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		f.Type = TypeRef{Name: value.Value}
		return nil
	}
	var raw struct {
		Description string        `yaml:"description"`
		Type        TypeRef       `yaml:"type"`
		Optional    bool          `yaml:"optional"`
		Unstable    *bool         `yaml:"unstable"`
		Stability   string        `yaml:"stability"`
		Validator   *rawValidator `yaml:"validator"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	f.Type = raw.Type
	f.Optional = raw.Optional
	f.Stability = raw.Stability
	// Legacy marker: `unstable: true` predates the stability field.
	if f.Stability == "" && raw.Unstable != nil {
		if *raw.Unstable {
			f.Stability = StabilityUnstable
		} else {
			f.Stability = StabilityStable
		}
	}
	if raw.Validator != nil {
		f.Validator = &Validator{
			GT:       string(raw.Validator.GT),
			LT:       string(raw.Validator.LT),
			GTE:      string(raw.Validator.GTE),
			LTE:      string(raw.Validator.LTE),
			Callback: raw.Validator.Callback,
		}
	}
	return nil
}

type rawValidator struct {
	GT       flexScalar `yaml:"gt"`
	LT       flexScalar `yaml:"lt"`
	GTE      flexScalar `yaml:"gte"`
	LTE      flexScalar `yaml:"lte"`
	Callback string     `yaml:"callback"`
}

// UnmarshalYAML accepts either a plain type name or a variant mapping.
func (r *TypeRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		r.Name = value.Value
		return nil
	}
	var raw struct {
		Variant []string `yaml:"variant"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if len(raw.Variant) == 0 {
		return fmt.Errorf("line %d: type must be a name or a variant list", value.Line)
	}
	r.Variant = raw.Variant
	return nil
}

type rawAccessCheck struct {
	None    *bool           `yaml:"none"`
	Simple  *rawCheckEntry  `yaml:"simple"`
	Complex []rawCheckEntry `yaml:"complex"`
}

type rawCheckEntry struct {
	Check     string `yaml:"check"`
	Privilege *struct {
		ResourcePattern string       `yaml:"resource_pattern"`
		ActionTypes     stringOrList `yaml:"action_type"`
	} `yaml:"privilege"`
}

func (a *rawAccessCheck) convert() (*AccessCheck, error) {
	out := &AccessCheck{}
	if a.None != nil && *a.None {
		out.None = true
		return out, nil
	}
	entries := a.Complex
	if a.Simple != nil {
		entries = append([]rawCheckEntry{*a.Simple}, entries...)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("access_check must declare none, simple, or complex")
	}
	for _, e := range entries {
		if e.Check != "" {
			out.Checks = append(out.Checks, e.Check)
		}
		if e.Privilege != nil {
			out.Privileges = append(out.Privileges, Privilege{
				ResourcePattern: e.Privilege.ResourcePattern,
				ActionTypes:     e.Privilege.ActionTypes,
			})
		}
	}
	return out, nil
}
