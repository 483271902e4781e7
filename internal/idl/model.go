// Package idl models IDL interface-definition files: named types, enums,
// structs, and commands with parameters and reply shapes. The model carries
// only what the compatibility checker inspects.
package idl

import "strings"

const arrayPrefix = "array<"

// Document is one parsed IDL file.
type Document struct {
	// File is the path of the source file relative to its IDL directory.
	File string

	Types    map[string]Type
	Enums    map[string]Enum
	Structs  map[string]Struct
	Commands map[string]Command
}

// Type is a leaf serialization type.
type Type struct {
	Name                  string
	CppType               string
	BSONSerializationType []string
}

// IsAny reports whether the type serializes as bson 'any'.
func (t Type) IsAny() bool {
	for _, b := range t.BSONSerializationType {
		if b == "any" {
			return true
		}
	}
	return false
}

// Enum is a closed value set.
type Enum struct {
	Name   string
	Type   string
	Values map[string]string
}

// Struct is a named field aggregate.
type Struct struct {
	Name   string
	Fields map[string]Field
}

// Command is a named operation with parameters and a reply shape.
type Command struct {
	Name        string
	Description string
	Namespace   string
	APIVersion  string
	Strict      bool
	Type        TypeRef
	ReplyType   string
	Fields      map[string]Field
	AccessCheck *AccessCheck
}

// Field is a command parameter or a struct member.
type Field struct {
	Name      string
	Type      TypeRef
	Optional  bool
	Stability string
	Validator *Validator
}

// Stable reports whether the field is part of the stable API surface.
// An unset stability marker means stable.
func (f Field) Stable() bool {
	return f.Stability == "" || f.Stability == StabilityStable
}

// Stability markers.
const (
	StabilityStable   = "stable"
	StabilityUnstable = "unstable"
	StabilityInternal = "internal"
)

// TypeRef names the type of a field or command value: either a single type
// (possibly array-wrapped) or a variant over several alternatives.
type TypeRef struct {
	Name    string
	Variant []string
}

// IsVariant reports whether the reference is a variant type.
func (r TypeRef) IsVariant() bool {
	return len(r.Variant) > 0
}

// IsArray reports whether the reference is array-wrapped.
func (r TypeRef) IsArray() bool {
	return strings.HasPrefix(r.Name, arrayPrefix) && strings.HasSuffix(r.Name, ">")
}

// Element returns the referenced type name with any array wrapper removed.
func (r TypeRef) Element() string {
	if r.IsArray() {
		return strings.TrimSuffix(strings.TrimPrefix(r.Name, arrayPrefix), ">")
	}
	return r.Name
}

// IsZero reports whether the reference is unset.
func (r TypeRef) IsZero() bool {
	return r.Name == "" && len(r.Variant) == 0
}

// Validator constrains a field's values.
type Validator struct {
	GT       string
	LT       string
	GTE      string
	LTE      string
	Callback string
}

// Equal reports whether two validators impose the same constraints.
func (v *Validator) Equal(other *Validator) bool {
	if v == nil || other == nil {
		return v == other
	}
	return *v == *other
}

// AccessCheck describes the authorization requirements of a command.
type AccessCheck struct {
	None       bool
	Checks     []string
	Privileges []Privilege
}

// Privilege is one resource-pattern/action-types authorization entry.
type Privilege struct {
	ResourcePattern string
	ActionTypes     []string
}

// ResolveType looks a type name up across the document's sections.
// Exactly one of the returns is meaningful; ok is false when the name is
// unknown to the document.
func (d *Document) ResolveType(name string) (kind TypeKind, typ Type, enum Enum, strct Struct, ok bool) {
	if t, found := d.Types[name]; found {
		return KindType, t, Enum{}, Struct{}, true
	}
	if e, found := d.Enums[name]; found {
		return KindEnum, Type{}, e, Struct{}, true
	}
	if s, found := d.Structs[name]; found {
		return KindStruct, Type{}, Enum{}, s, true
	}
	return 0, Type{}, Enum{}, Struct{}, false
}

// TypeKind discriminates what a type name resolved to.
type TypeKind uint8

const (
	KindType TypeKind = iota + 1
	KindEnum
	KindStruct
)
