package compat

import "fmt"

// Context is the reporting façade for one comparison run between one old
// and one new IDL directory. It translates "this specific incompatibility
// occurred" calls into fully formatted records on the bound collection.
//
// The context is a pure translation layer: no state beyond the two
// directory identifiers and the collection reference, no I/O, and identical
// inputs always append an identical record. The comparison algorithm never
// constructs Error values itself.
type Context struct {
	oldDir string
	newDir string
	errors *ErrorCollection
}

// NewContext binds a context to the compared directories and a collection.
func NewContext(oldDir, newDir string, errors *ErrorCollection) *Context {
	return &Context{oldDir: oldDir, newDir: newDir, errors: errors}
}

// Errors returns the bound collection.
func (c *Context) Errors() *ErrorCollection {
	return c.errors
}

func (c *Context) add(code Code, command, msg, file string) {
	c.errors.Add(code, command, msg, c.oldDir, c.newDir, file)
}

// FieldKind tells a dual-variant report which flavour of command field the
// finding concerns: a top-level command parameter or a field of the
// command's type struct. The two variants of one report always map to two
// distinct codes.
type FieldKind uint8

const (
	// CommandParameter marks a top-level command parameter.
	CommandParameter FieldKind = iota
	// TypeField marks a field of the command value type's struct.
	TypeField
)

// Optional carries an identifier argument that only one variant of a dual
// report consumes. The zero value means "not applicable"; empty strings are
// never used as absence markers.
type Optional struct {
	value string
	ok    bool
}

// Some returns a set Optional.
func Some(v string) Optional {
	return Optional{value: v, ok: true}
}

// None is the absent Optional.
var None Optional

// IsSet reports whether the value is present.
func (o Optional) IsSet() bool {
	return o.ok
}

func (o Optional) String() string {
	return o.value
}

// variant is one (code, message template) arm of a dual report.
type variant struct {
	code   Code
	format string
}

// dual pairs the parameter and type-field arms of one report concept.
type dual struct {
	param     variant
	typeField variant
}

func (d dual) pick(kind FieldKind) variant {
	if kind == CommandParameter {
		return d.param
	}
	return d.typeField
}

func (c *Context) addVariant(d dual, kind FieldKind, command, file string, args ...any) {
	v := d.pick(kind)
	c.add(v.code, command, fmt.Sprintf(v.format, args...), file)
}

// ReportCommandInvalidAPIVersion records a command carrying an API version
// outside the supported set.
func (c *Context) ReportCommandInvalidAPIVersion(command, apiVersion, file string) {
	c.add(CodeCommandInvalidAPIVersion, command,
		fmt.Sprintf("'%s' has an invalid API version '%s'.", command, apiVersion), file)
}

// ReportCommandRemoved records an old command that no longer exists.
func (c *Context) ReportCommandRemoved(command, file string) {
	c.add(CodeRemovedCommand, command,
		fmt.Sprintf("Old command '%s' was removed from new commands.", command), file)
}

// ReportDuplicateCommandName records the same command name defined twice
// within one directory.
func (c *Context) ReportDuplicateCommandName(command, dir, file string) {
	c.add(CodeDuplicateCommandName, command,
		fmt.Sprintf("'%s' has duplicate command: '%s'", dir, command), file)
}

// ReportNewNamespaceIncompatible records a namespace change the old
// namespace does not permit.
func (c *Context) ReportNewNamespaceIncompatible(command, oldNamespace, newNamespace, file string) {
	c.add(CodeNewNamespaceIncompatible, command,
		fmt.Sprintf("'%s' has namespace '%s' that is incompatible with the old namespace '%s'.",
			command, newNamespace, oldNamespace), file)
}

// ReportMissingErrorReplyStruct records a file without the ErrorReply
// struct. The finding concerns the file as a whole, not a command.
func (c *Context) ReportMissingErrorReplyStruct(file string) {
	c.add(CodeMissingErrorReplyStruct, NoCommand,
		fmt.Sprintf("'%s' is missing the ErrorReply struct", file), file)
}

// ReportCheckNotEqual records an access_check check that changed.
func (c *Context) ReportCheckNotEqual(command, oldCheck, newCheck, file string) {
	c.add(CodeCheckNotEqual, command,
		fmt.Sprintf("'%s' has a new check '%s' that is not equal to the old check '%s'",
			command, newCheck, oldCheck), file)
}

// ReportResourcePatternNotEqual records an access_check resource pattern
// that changed.
func (c *Context) ReportResourcePatternNotEqual(command, oldPattern, newPattern, file string) {
	c.add(CodeResourcePatternNotEqual, command,
		fmt.Sprintf("'%s' has a new resource pattern '%s' that is not equal to the old resource pattern '%s'",
			command, newPattern, oldPattern), file)
}

// ReportNewActionTypesNotSubset records new access_check action types that
// are not contained in the old ones.
func (c *Context) ReportNewActionTypesNotSubset(command, file string) {
	c.add(CodeNewActionTypesNotSubset, command,
		fmt.Sprintf("'%s' has new action types that are not a subset of the old action types", command), file)
}

// ReportTypeNotArray records a symbol whose old type was an array while the
// new one is not. symbol names the kind of element ("type", "parameter"),
// symbolName the concrete element.
func (c *Context) ReportTypeNotArray(symbol, command, symbolName, newType, oldType, file string) {
	c.add(CodeTypeNotArray, command,
		fmt.Sprintf("The command '%s' has %s: '%s' with new type '%s' while the older type was '%s'.",
			command, symbol, symbolName, newType, oldType), file)
}
