package compat

import "fmt"

// Reply-field reports. These are single-code: reply fields have no
// parameter/type-field split, so each report maps to exactly one code.

// ReportNewReplyFieldMissing records a reply field present in the old
// command but absent from the new one.
func (c *Context) ReportNewReplyFieldMissing(command, field, file string) {
	c.add(CodeNewReplyFieldMissing, command,
		fmt.Sprintf("'%s' is missing a reply field or sub-field '%s' that exists in the old command.",
			command, field), file)
}

// ReportNewReplyFieldOptional records a reply field that became optional.
func (c *Context) ReportNewReplyFieldOptional(command, field, file string) {
	c.add(CodeNewReplyFieldOptional, command,
		fmt.Sprintf("'%s' has an optional reply field or sub-field '%s' that was non-optional in the old command.",
			command, field), file)
}

// ReportNewReplyFieldUnstable records a reply field that became unstable.
func (c *Context) ReportNewReplyFieldUnstable(command, field, file string) {
	c.add(CodeNewReplyFieldUnstable, command,
		fmt.Sprintf("'%s' has an unstable reply field or sub-field '%s' that was stable in the old command.",
			command, field), file)
}

// ReportReplyFieldNotSubset records a reply field type that is not a subset
// of its counterpart.
func (c *Context) ReportReplyFieldNotSubset(command, field, typeName, file string) {
	c.add(CodeReplyFieldNotSubset, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' with type '%s' "+
			"that is not a subset of the other version "+
			"of this reply field.", command, field, typeName), file)
}

// ReportReplyFieldTypeInvalid records a reply field whose type could not be
// resolved.
func (c *Context) ReportReplyFieldTypeInvalid(command, field, file string) {
	c.add(CodeReplyFieldTypeInvalid, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' that has an invalid type",
			command, field), file)
}

// ReportNewReplyFieldBSONAny records a new reply field type with bson
// serialization type 'any' where the old type was not 'any'.
func (c *Context) ReportNewReplyFieldBSONAny(command, field, newFieldType, file string) {
	c.add(CodeNewReplyFieldBSONAny, command,
		fmt.Sprintf("'%s' has a new reply field or sub-field '%s' of type '%s' "+
			"that has a bson serialization type 'any'", command, field, newFieldType), file)
}

// ReportOldReplyFieldBSONAny records an old reply field type with bson
// serialization type 'any' where the new type is not 'any'.
func (c *Context) ReportOldReplyFieldBSONAny(command, field, oldFieldType, file string) {
	c.add(CodeOldReplyFieldBSONAny, command,
		fmt.Sprintf("'%s' has an old reply field or sub-field '%s' of type '%s' "+
			"that has a bson serialization type 'any'", command, field, oldFieldType), file)
}

// ReportReplyFieldBSONAnyNotAllowed records a reply field whose old and new
// types are both bson 'any' without an allow-list entry.
func (c *Context) ReportReplyFieldBSONAnyNotAllowed(command, field, typeName, file string) {
	c.add(CodeReplyFieldBSONAnyNotAllowed, command,
		fmt.Sprintf("'%s' has an old and new reply field or sub-field '%s' of type '%s' "+
			"that has a bson serialization type 'any' when it "+
			"is not explicitly allowed.", command, field, typeName), file)
}

// ReportReplyFieldCppTypeNotEqual records a reply field type whose cpp_type
// changed.
func (c *Context) ReportReplyFieldCppTypeNotEqual(command, field, typeName, file string) {
	c.add(CodeReplyFieldCppTypeNotEqual, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' of type '%s' that has cpp_type "+
			"that is not equal in the old and new versions.", command, field, typeName), file)
}

// ReportNewReplyFieldTypeNotEnum records a reply field whose new type is
// not an enum while the old one was.
func (c *Context) ReportNewReplyFieldTypeNotEnum(command, field, newFieldType, oldFieldType, file string) {
	c.add(CodeNewReplyFieldTypeNotEnum, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' of type '%s' "+
			"that is not an enum while the corresponding "+
			"old reply field was an enum of type '%s'.",
			command, field, newFieldType, oldFieldType), file)
}

// ReportNewReplyFieldTypeNotStruct records a reply field whose new type is
// not a struct while the old one was.
func (c *Context) ReportNewReplyFieldTypeNotStruct(command, field, newFieldType, oldFieldType, file string) {
	c.add(CodeNewReplyFieldTypeNotStruct, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' of type '%s' "+
			"that is not a struct while the corresponding "+
			"old reply field was a struct of type '%s'.",
			command, field, newFieldType, oldFieldType), file)
}

// ReportNewReplyFieldTypeEnumOrStruct records a reply field whose new type
// became an enum or struct while the old one was neither.
func (c *Context) ReportNewReplyFieldTypeEnumOrStruct(command, field, newFieldType, oldFieldType, file string) {
	c.add(CodeNewReplyFieldTypeEnumOrStruct, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' of type '%s' that is an "+
			"enum or struct while the corresponding "+
			"old reply field was a non-enum or struct of type '%s'.",
			command, field, newFieldType, oldFieldType), file)
}

// ReportNewReplyFieldVariantType records a reply field that became variant.
func (c *Context) ReportNewReplyFieldVariantType(command, field, oldFieldType, file string) {
	c.add(CodeNewReplyFieldVariantType, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' that has a variant "+
			"type while the corresponding "+
			"old reply field type '%s' is not variant.", command, field, oldFieldType), file)
}

// ReportNewReplyFieldVariantTypeNotSubset records a variant reply field
// carrying a type the old variant set does not.
func (c *Context) ReportNewReplyFieldVariantTypeNotSubset(command, field, variantType, file string) {
	c.add(CodeNewReplyFieldVariantTypeNotSubset, command,
		fmt.Sprintf("'%s' has a reply field or sub-field '%s' with variant types that is "+
			"not a subset of the corresponding "+
			"old reply field types: The type '%s' is not in the old reply field types.",
			command, field, variantType), file)
}

// ReportReplyFieldContainsValidator records a new reply field that gained a
// validator the old field did not have.
func (c *Context) ReportReplyFieldContainsValidator(command, field, file string) {
	c.add(CodeReplyFieldContainsValidator, command,
		fmt.Sprintf("The new version of the command '%s' has a reply field or sub-field '%s' "+
			"that contains a validator while the old version does not", command, field), file)
}

// ReportReplyFieldValidatorsNotEqual records old and new reply field
// validators that differ.
func (c *Context) ReportReplyFieldValidatorsNotEqual(command, field, file string) {
	c.add(CodeReplyFieldValidatorsNotEqual, command,
		fmt.Sprintf("Validator for reply field or sub-field '%s' in old command '%s' "+
			"is not equal to the validator in the new version of the reply field",
			command, field), file)
}
