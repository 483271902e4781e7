package compat

// Dual parameter/type-field reports. Each concept below applies both to
// top-level command parameters and to fields of the command value type's
// struct; the FieldKind argument selects which arm fires. Every concept is
// a (code, template) pair per arm, kept in one table so the two arms can
// never drift onto the same code.

var (
	typeInvalid = dual{
		param: variant{CodeCommandParameterTypeInvalid,
			"The '%s' command has a field or sub-field '%s' that has an invalid type"},
		typeField: variant{CodeCommandTypeInvalid,
			"'%s' has an invalid type or has a sub-struct with an invalid type"},
	}
	typeNotSuperset = dual{
		param: variant{CodeCommandParameterTypeNotSuperset,
			"The command '%s' has field or sub-field '%s' with type '%s' that is not a superset of the " +
				"older version of this field type."},
		typeField: variant{CodeCommandTypeNotSuperset,
			"The command '%s' or its sub-struct has type '%s' that is not a superset of " +
				"the older version of this struct type."},
	}
	typeContainsValidator = dual{
		param: variant{CodeCommandParameterContainsValidator,
			"Field or sub-field '%s' for new command '%s' contains a validator " +
				"while the old field does not."},
		typeField: variant{CodeCommandTypeContainsValidator,
			"The command '%s' or its sub-struct has type '%s' with field '%s' that " +
				"contains a validator while " +
				"the old struct type does not."},
	}
	typeValidatorsNotEqual = dual{
		param: variant{CodeCommandParameterValidatorsNotEqual,
			"Validator for field or sub-field '%s' in old command '%s' is not equal " +
				"to the validator in the new version of the field"},
		typeField: variant{CodeCommandTypeValidatorsNotEqual,
			"Validator for field '%s' in type '%s' in old command '%s' or its " +
				"sub-struct is not equal to the validator in the new struct type."},
	}
	// The doubled quote after the first placeholder in the parameter arm is
	// a long-standing text defect that downstream golden files depend on.
	oldTypeBSONAny = dual{
		param: variant{CodeOldCommandParameterTypeBSONAny,
			"The '%s'' command has field or sub-field '%s' that has type '%s' " +
				"that has a bson serialization type 'any'"},
		typeField: variant{CodeOldCommandTypeBSONAny,
			"'%s' or its sub-struct has type '%s' that has a " +
				"bson serialization type 'any'"},
	}
	newTypeBSONAny = dual{
		param: variant{CodeNewCommandParameterTypeBSONAny,
			"The '%s' command has field or sub-field '%s' that has type '%s' " +
				"that has a bson serialization type 'any'"},
		typeField: variant{CodeNewCommandTypeBSONAny,
			"The '%s' command or its sub-struct has type '%s' that " +
				"has a bson serialization type 'any'"},
	}
	typeBSONAnyNotAllowed = dual{
		param: variant{CodeCommandParameterBSONAnyNotAllowed,
			"'%s' has an old and new field or sub-field '%s' of type " +
				"'%s' that has a bson " +
				"serialization type 'any' when it is not explicitly allowed."},
		typeField: variant{CodeCommandTypeBSONAnyNotAllowed,
			"'%s' or its sub-struct has an old and new type '%s' that has a bson " +
				"serialization type 'any' when it is not explicitly allowed."},
	}
	cppTypeNotEqual = dual{
		param: variant{CodeCommandParameterCppTypeNotEqual,
			"'%s' has field or sub-field '%s' of type '%s' that has  " +
				"cpp_type that is not equal in the old and new versions"},
		typeField: variant{CodeCommandCppTypeNotEqual,
			"'%s' or its sub-struct has command type '%s' that has cpp_type " +
				"that is not equal in the old and new versions"},
	}
	typeEnumOrStruct = dual{
		param: variant{CodeNewCommandParameterTypeEnumOrStruct,
			"The command '%s' has field or sub-field '%s' of type '%s' that is an enum or " +
				"struct while the corresponding old field type is a non-enum or " +
				"non-struct of type '%s'."},
		typeField: variant{CodeNewCommandTypeEnumOrStruct,
			"The command '%s' or its sub-struct has type '%s' that is an enum " +
				"or struct while the corresponding" +
				"old type was a non-enum or struct of type '%s'."},
	}
	typeNotEnum = dual{
		param: variant{CodeNewCommandParameterTypeNotEnum,
			"The '%s' command has field or sub-field '%s' of type '%s' that is " +
				"not an enum while the corresponding old field type was an enum of type '%s'."},
		typeField: variant{CodeNewCommandTypeNotEnum,
			"'%s' or its sub-struct has type '%s' that is not an enum while the corresponding " +
				"old type was an enum of type '%s'."},
	}
	typeNotStruct = dual{
		param: variant{CodeNewCommandParameterTypeNotStruct,
			"The '%s' command has field or sub-field '%s' of type '%s' that is " +
				"not a struct while the corresponding old " +
				"field type was a struct of type '%s'."},
		typeField: variant{CodeNewCommandTypeNotStruct,
			"'%s' or its sub-struct has type '%s' that is not a " +
				"struct while the corresponding old type was a struct of type '%s'."},
	}
	typeNotVariant = dual{
		param: variant{CodeNewCommandParameterTypeNotVariant,
			"The '%s' command has field or sub-field '%s' of type '%s' that is " +
				"not variant while the corresponding old field type is variant."},
		typeField: variant{CodeNewCommandTypeNotVariant,
			"'%s' or its sub-struct has type '%s' that is not " +
				"variant while the corresponding " +
				"old type is variant."},
	}
	variantNotSuperset = dual{
		param: variant{CodeNewCommandParameterVariantNotSuperset,
			"The '%s' command has field or sub-field '%s' of variant types that is not " +
				"a superset of the corresponding old field variant types: " +
				"The type '%s' is in the old field types but not the new field types."},
		typeField: variant{CodeNewCommandVariantNotSuperset,
			"'%s' or its sub-struct has variant types that is not a supserset " +
				"of the corresponding" +
				" old command variant types: The type '%s' " +
				"is in the old command types but not the new command types."},
	}
	fieldAddedRequired = dual{
		param: variant{CodeAddedRequiredCommandParameter,
			"New field or sub-field '%s' for command '%s' is required when it should " +
				"be optional."},
		typeField: variant{CodeNewCommandTypeFieldAddedRequired,
			"The command '%s' or its sub-struct has type '%s' with an added and " +
				"required type field '%s' that did not exist " +
				"in the old struct type."},
	}
	fieldMissing = dual{
		param: variant{CodeRemovedCommandParameter,
			"Field or sub-field '%s' for old command '%s' was removed from the corresponding new" +
				"struct."},
		typeField: variant{CodeNewCommandTypeFieldMissing,
			"The command '%s' or its sub-struct has type '%s' that is missing a " +
				"field '%s' that exists in the old struct type."},
	}
	fieldRequired = dual{
		param: variant{CodeCommandParameterRequired,
			"'%s' has a required field or sub-field '%s' that was optional in the old struct."},
		typeField: variant{CodeNewCommandTypeFieldRequired,
			"'%s' or its sub-struct has type '%s' with a required type field '%s' " +
				"that was optional in the old struct type."},
	}
	fieldStableRequired = dual{
		param: variant{CodeCommandParameterStableRequired,
			"'%s' has a stable required field or sub-field '%s' that " +
				"was unstable in the old struct. " +
				"The new field should be optional."},
		typeField: variant{CodeNewCommandTypeFieldStableRequired,
			"'%s' or its sub-struct has type '%s' with a stable and required " +
				"type field '%s' that was unstable " +
				"in the old struct type."},
	}
	fieldUnstable = dual{
		param: variant{CodeCommandParameterUnstable,
			"'%s' has an unstable field or sub-field '%s' that was stable in the old struct."},
		typeField: variant{CodeNewCommandTypeFieldUnstable,
			"'%s' or its sub-struct has type '%s' with an unstable " +
				"field '%s' that was stable in the old " +
				"struct type."},
	}
)

// ReportCommandOrParamTypeInvalid records a parameter or command type that
// could not be resolved. field applies to the parameter arm only.
func (c *Context) ReportCommandOrParamTypeInvalid(command, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeInvalid, kind, command, file, command, field)
		return
	}
	c.addVariant(typeInvalid, kind, command, file, command)
}

// ReportCommandOrParamTypeNotSuperset records a parameter or command type
// that is not a superset of the old one.
func (c *Context) ReportCommandOrParamTypeNotSuperset(command, typeName, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeNotSuperset, kind, command, file, command, field, typeName)
		return
	}
	c.addVariant(typeNotSuperset, kind, command, file, command, typeName)
}

// ReportCommandOrParamTypeContainsValidator records a new parameter or
// command type field that gained a validator. typeName applies to the
// type-field arm only.
func (c *Context) ReportCommandOrParamTypeContainsValidator(command, field, file string, typeName Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeContainsValidator, kind, command, file, field, command)
		return
	}
	c.addVariant(typeContainsValidator, kind, command, file, command, typeName, field)
}

// ReportCommandOrParamTypeValidatorsNotEqual records old and new validators
// that differ on a parameter or command type field.
func (c *Context) ReportCommandOrParamTypeValidatorsNotEqual(command, field, file string, typeName Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeValidatorsNotEqual, kind, command, file, field, command)
		return
	}
	c.addVariant(typeValidatorsNotEqual, kind, command, file, field, typeName, command)
}

// ReportOldCommandOrParamTypeBSONAny records an old parameter or command
// type with bson serialization type 'any' where the new one is not 'any'.
func (c *Context) ReportOldCommandOrParamTypeBSONAny(command, oldType, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(oldTypeBSONAny, kind, command, file, command, field, oldType)
		return
	}
	c.addVariant(oldTypeBSONAny, kind, command, file, command, oldType)
}

// ReportNewCommandOrParamTypeBSONAny records a new parameter or command
// type with bson serialization type 'any' where the old one is not 'any'.
func (c *Context) ReportNewCommandOrParamTypeBSONAny(command, newType, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(newTypeBSONAny, kind, command, file, command, field, newType)
		return
	}
	c.addVariant(newTypeBSONAny, kind, command, file, command, newType)
}

// ReportCommandOrParamTypeBSONAnyNotAllowed records a parameter or command
// type that is bson 'any' on both sides without an allow-list entry.
func (c *Context) ReportCommandOrParamTypeBSONAnyNotAllowed(command, typeName, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeBSONAnyNotAllowed, kind, command, file, command, field, typeName)
		return
	}
	c.addVariant(typeBSONAnyNotAllowed, kind, command, file, command, typeName)
}

// ReportCommandOrParamCppTypeNotEqual records a parameter or command type
// whose cpp_type changed.
func (c *Context) ReportCommandOrParamCppTypeNotEqual(command, typeName, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(cppTypeNotEqual, kind, command, file, command, field, typeName)
		return
	}
	c.addVariant(cppTypeNotEqual, kind, command, file, command, typeName)
}

// ReportNewCommandOrParamTypeEnumOrStruct records a parameter or command
// type that became an enum or struct while the old one was neither.
func (c *Context) ReportNewCommandOrParamTypeEnumOrStruct(command, newType, oldType, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeEnumOrStruct, kind, command, file, command, field, newType, oldType)
		return
	}
	c.addVariant(typeEnumOrStruct, kind, command, file, command, newType, oldType)
}

// ReportNewCommandOrParamTypeNotEnum records a parameter or command type
// that stopped being an enum.
func (c *Context) ReportNewCommandOrParamTypeNotEnum(command, newType, oldType, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeNotEnum, kind, command, file, command, field, newType, oldType)
		return
	}
	c.addVariant(typeNotEnum, kind, command, file, command, newType, oldType)
}

// ReportNewCommandOrParamTypeNotStruct records a parameter or command type
// that stopped being a struct.
func (c *Context) ReportNewCommandOrParamTypeNotStruct(command, newType, oldType, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeNotStruct, kind, command, file, command, field, newType, oldType)
		return
	}
	c.addVariant(typeNotStruct, kind, command, file, command, newType, oldType)
}

// ReportNewCommandOrParamTypeNotVariant records a parameter or command type
// that stopped being variant.
func (c *Context) ReportNewCommandOrParamTypeNotVariant(command, newType, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(typeNotVariant, kind, command, file, command, field, newType)
		return
	}
	c.addVariant(typeNotVariant, kind, command, file, command, newType)
}

// ReportNewCommandOrParamVariantTypeNotSuperset records a variant parameter
// or command type missing one of the old variant alternatives. variantType
// names the alternative that disappeared.
func (c *Context) ReportNewCommandOrParamVariantTypeNotSuperset(command, variantType, file string, field Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(variantNotSuperset, kind, command, file, command, field, variantType)
		return
	}
	c.addVariant(variantNotSuperset, kind, command, file, command, variantType)
}

// ReportNewParamOrTypeFieldAddedRequired records an added parameter or
// command type field that is required instead of optional.
func (c *Context) ReportNewParamOrTypeFieldAddedRequired(command, field, file, typeName string, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(fieldAddedRequired, kind, command, file, field, command)
		return
	}
	c.addVariant(fieldAddedRequired, kind, command, file, command, typeName, field)
}

// ReportNewParamOrTypeFieldMissing records a parameter or command type
// field that disappeared from the new command.
func (c *Context) ReportNewParamOrTypeFieldMissing(command, field, file, typeName string, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(fieldMissing, kind, command, file, field, command)
		return
	}
	c.addVariant(fieldMissing, kind, command, file, command, typeName, field)
}

// ReportNewParamOrTypeFieldRequired records a parameter or command type
// field that became required. typeName applies to the type-field arm only.
func (c *Context) ReportNewParamOrTypeFieldRequired(command, field, file string, typeName Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(fieldRequired, kind, command, file, command, field)
		return
	}
	c.addVariant(fieldRequired, kind, command, file, command, typeName, field)
}

// ReportNewParamOrTypeFieldStableRequired records a parameter or command
// type field that became stable and required while the old one was
// unstable.
func (c *Context) ReportNewParamOrTypeFieldStableRequired(command, field, file string, typeName Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(fieldStableRequired, kind, command, file, command, field)
		return
	}
	c.addVariant(fieldStableRequired, kind, command, file, command, typeName, field)
}

// ReportNewParamOrTypeFieldUnstable records a parameter or command type
// field that became unstable while the old one was stable.
func (c *Context) ReportNewParamOrTypeFieldUnstable(command, field, file string, typeName Optional, kind FieldKind) {
	if kind == CommandParameter {
		c.addVariant(fieldUnstable, kind, command, file, command, field)
		return
	}
	c.addVariant(fieldUnstable, kind, command, file, command, typeName, field)
}
