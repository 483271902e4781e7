package compat

import "fmt"

// Code identifies one kind of IDL incompatibility.
//
// Codes are the stable, test-addressable handle for "this exact situation
// was detected". Message wording may change over time; codes must not move,
// be reused for a different meaning, or collide, because negative-test
// suites assert on codes rather than on message text.
type Code string

const (
	CodeCommandInvalidAPIVersion              Code = "ID0001"
	CodeDuplicateCommandName                  Code = "ID0002"
	CodeRemovedCommand                        Code = "ID0003"
	CodeNewReplyFieldUnstable                 Code = "ID0004"
	CodeNewReplyFieldOptional                 Code = "ID0005"
	CodeNewReplyFieldMissing                  Code = "ID0006"
	CodeNewReplyFieldTypeNotStruct            Code = "ID0007"
	CodeNewReplyFieldTypeNotEnum              Code = "ID0008"
	CodeOldReplyFieldBSONAny                  Code = "ID0009"
	CodeNewReplyFieldBSONAny                  Code = "ID0010"
	CodeNewReplyFieldTypeEnumOrStruct         Code = "ID0011"
	CodeReplyFieldTypeInvalid                 Code = "ID0012"
	CodeReplyFieldNotSubset                   Code = "ID0013"
	CodeNewNamespaceIncompatible              Code = "ID0014"
	CodeCommandTypeNotSuperset                Code = "ID0015"
	CodeCommandTypeInvalid                    Code = "ID0016"
	CodeOldCommandTypeBSONAny                 Code = "ID0017"
	CodeNewCommandTypeBSONAny                 Code = "ID0018"
	CodeNewCommandTypeFieldMissing            Code = "ID0019"
	CodeNewCommandTypeFieldRequired           Code = "ID0020"
	CodeNewCommandTypeFieldUnstable           Code = "ID0021"
	CodeNewCommandTypeNotStruct               Code = "ID0022"
	CodeNewCommandTypeNotEnum                 Code = "ID0023"
	CodeNewCommandTypeEnumOrStruct            Code = "ID0024"
	CodeMissingErrorReplyStruct               Code = "ID0025"
	CodeNewReplyFieldVariantType              Code = "ID0026"
	CodeNewReplyFieldVariantTypeNotSubset     Code = "ID0027"
	CodeRemovedCommandParameter               Code = "ID0028"
	CodeAddedRequiredCommandParameter         Code = "ID0029"
	CodeCommandParameterUnstable              Code = "ID0030"
	CodeCommandParameterStableRequired        Code = "ID0031"
	CodeCommandParameterRequired              Code = "ID0032"
	CodeOldCommandParameterTypeBSONAny        Code = "ID0033"
	CodeNewCommandParameterTypeBSONAny        Code = "ID0034"
	CodeNewCommandParameterTypeNotStruct      Code = "ID0035"
	CodeNewCommandParameterTypeNotEnum        Code = "ID0036"
	CodeNewCommandParameterTypeEnumOrStruct   Code = "ID0037"
	CodeCommandParameterTypeInvalid           Code = "ID0038"
	CodeCommandParameterTypeNotSuperset       Code = "ID0039"
	CodeReplyFieldContainsValidator           Code = "ID0040"
	CodeCommandParameterContainsValidator     Code = "ID0041"
	CodeCommandParameterValidatorsNotEqual    Code = "ID0042"
	CodeCommandTypeContainsValidator          Code = "ID0043"
	CodeCommandTypeValidatorsNotEqual         Code = "ID0044"
	CodeNewCommandTypeFieldStableRequired     Code = "ID0045"
	CodeNewCommandTypeFieldAddedRequired      Code = "ID0046"
	CodeReplyFieldBSONAnyNotAllowed           Code = "ID0047"
	CodeCommandParameterBSONAnyNotAllowed     Code = "ID0048"
	CodeCommandTypeBSONAnyNotAllowed          Code = "ID0049"
	CodeCommandParameterCppTypeNotEqual       Code = "ID0050"
	CodeCommandCppTypeNotEqual                Code = "ID0051"
	CodeReplyFieldCppTypeNotEqual             Code = "ID0052"
	CodeNewCommandParameterTypeNotVariant     Code = "ID0053"
	CodeNewCommandTypeNotVariant              Code = "ID0054"
	CodeNewCommandParameterVariantNotSuperset Code = "ID0055"
	CodeNewCommandVariantNotSuperset          Code = "ID0056"
	CodeReplyFieldValidatorsNotEqual          Code = "ID0057"
	CodeCheckNotEqual                         Code = "ID0058"
	CodeResourcePatternNotEqual               Code = "ID0059"
	CodeNewActionTypesNotSubset               Code = "ID0060"
	CodeTypeNotArray                          Code = "ID0061"
)

var codeTitle = map[Code]string{
	CodeCommandInvalidAPIVersion:              "command has an invalid API version",
	CodeDuplicateCommandName:                  "duplicate command name in directory",
	CodeRemovedCommand:                        "old command removed from new commands",
	CodeNewReplyFieldUnstable:                 "new reply field is unstable",
	CodeNewReplyFieldOptional:                 "new reply field is optional",
	CodeNewReplyFieldMissing:                  "new command is missing a reply field",
	CodeNewReplyFieldTypeNotStruct:            "new reply field type is no longer a struct",
	CodeNewReplyFieldTypeNotEnum:              "new reply field type is no longer an enum",
	CodeOldReplyFieldBSONAny:                  "old reply field has bson serialization type 'any'",
	CodeNewReplyFieldBSONAny:                  "new reply field has bson serialization type 'any'",
	CodeNewReplyFieldTypeEnumOrStruct:         "new reply field type became an enum or struct",
	CodeReplyFieldTypeInvalid:                 "reply field has an invalid type",
	CodeReplyFieldNotSubset:                   "reply field type is not a subset",
	CodeNewNamespaceIncompatible:              "new namespace is incompatible",
	CodeCommandTypeNotSuperset:                "command type is not a superset",
	CodeCommandTypeInvalid:                    "command type is invalid",
	CodeOldCommandTypeBSONAny:                 "old command type has bson serialization type 'any'",
	CodeNewCommandTypeBSONAny:                 "new command type has bson serialization type 'any'",
	CodeNewCommandTypeFieldMissing:            "new command type is missing a field",
	CodeNewCommandTypeFieldRequired:           "new command type field became required",
	CodeNewCommandTypeFieldUnstable:           "new command type field is unstable",
	CodeNewCommandTypeNotStruct:               "new command type is no longer a struct",
	CodeNewCommandTypeNotEnum:                 "new command type is no longer an enum",
	CodeNewCommandTypeEnumOrStruct:            "new command type became an enum or struct",
	CodeMissingErrorReplyStruct:               "missing the ErrorReply struct",
	CodeNewReplyFieldVariantType:              "new reply field type became variant",
	CodeNewReplyFieldVariantTypeNotSubset:     "new reply field variant types are not a subset",
	CodeRemovedCommandParameter:               "command parameter was removed",
	CodeAddedRequiredCommandParameter:         "added command parameter is required",
	CodeCommandParameterUnstable:              "command parameter became unstable",
	CodeCommandParameterStableRequired:        "command parameter became stable and required",
	CodeCommandParameterRequired:              "command parameter became required",
	CodeOldCommandParameterTypeBSONAny:        "old command parameter has bson serialization type 'any'",
	CodeNewCommandParameterTypeBSONAny:        "new command parameter has bson serialization type 'any'",
	CodeNewCommandParameterTypeNotStruct:      "new command parameter type is no longer a struct",
	CodeNewCommandParameterTypeNotEnum:        "new command parameter type is no longer an enum",
	CodeNewCommandParameterTypeEnumOrStruct:   "new command parameter type became an enum or struct",
	CodeCommandParameterTypeInvalid:           "command parameter has an invalid type",
	CodeCommandParameterTypeNotSuperset:       "command parameter type is not a superset",
	CodeReplyFieldContainsValidator:           "new reply field gained a validator",
	CodeCommandParameterContainsValidator:     "new command parameter gained a validator",
	CodeCommandParameterValidatorsNotEqual:    "command parameter validators differ",
	CodeCommandTypeContainsValidator:          "new command type field gained a validator",
	CodeCommandTypeValidatorsNotEqual:         "command type validators differ",
	CodeNewCommandTypeFieldStableRequired:     "new command type field became stable and required",
	CodeNewCommandTypeFieldAddedRequired:      "added command type field is required",
	CodeReplyFieldBSONAnyNotAllowed:           "reply field bson serialization type 'any' is not allowed",
	CodeCommandParameterBSONAnyNotAllowed:     "command parameter bson serialization type 'any' is not allowed",
	CodeCommandTypeBSONAnyNotAllowed:          "command type bson serialization type 'any' is not allowed",
	CodeCommandParameterCppTypeNotEqual:       "command parameter cpp_type differs",
	CodeCommandCppTypeNotEqual:                "command type cpp_type differs",
	CodeReplyFieldCppTypeNotEqual:             "reply field cpp_type differs",
	CodeNewCommandParameterTypeNotVariant:     "new command parameter type is no longer variant",
	CodeNewCommandTypeNotVariant:              "new command type is no longer variant",
	CodeNewCommandParameterVariantNotSuperset: "new command parameter variant types are not a superset",
	CodeNewCommandVariantNotSuperset:          "new command variant types are not a superset",
	CodeReplyFieldValidatorsNotEqual:          "reply field validators differ",
	CodeCheckNotEqual:                         "access check differs",
	CodeResourcePatternNotEqual:               "access check resource pattern differs",
	CodeNewActionTypesNotSubset:               "new action types are not a subset",
	CodeTypeNotArray:                          "type is no longer an array",
}

// allCodes enumerates the registry in numeric order. Append-only: codes are
// part of the public contract and must never be renumbered or reused.
var allCodes = []Code{
	CodeCommandInvalidAPIVersion,
	CodeDuplicateCommandName,
	CodeRemovedCommand,
	CodeNewReplyFieldUnstable,
	CodeNewReplyFieldOptional,
	CodeNewReplyFieldMissing,
	CodeNewReplyFieldTypeNotStruct,
	CodeNewReplyFieldTypeNotEnum,
	CodeOldReplyFieldBSONAny,
	CodeNewReplyFieldBSONAny,
	CodeNewReplyFieldTypeEnumOrStruct,
	CodeReplyFieldTypeInvalid,
	CodeReplyFieldNotSubset,
	CodeNewNamespaceIncompatible,
	CodeCommandTypeNotSuperset,
	CodeCommandTypeInvalid,
	CodeOldCommandTypeBSONAny,
	CodeNewCommandTypeBSONAny,
	CodeNewCommandTypeFieldMissing,
	CodeNewCommandTypeFieldRequired,
	CodeNewCommandTypeFieldUnstable,
	CodeNewCommandTypeNotStruct,
	CodeNewCommandTypeNotEnum,
	CodeNewCommandTypeEnumOrStruct,
	CodeMissingErrorReplyStruct,
	CodeNewReplyFieldVariantType,
	CodeNewReplyFieldVariantTypeNotSubset,
	CodeRemovedCommandParameter,
	CodeAddedRequiredCommandParameter,
	CodeCommandParameterUnstable,
	CodeCommandParameterStableRequired,
	CodeCommandParameterRequired,
	CodeOldCommandParameterTypeBSONAny,
	CodeNewCommandParameterTypeBSONAny,
	CodeNewCommandParameterTypeNotStruct,
	CodeNewCommandParameterTypeNotEnum,
	CodeNewCommandParameterTypeEnumOrStruct,
	CodeCommandParameterTypeInvalid,
	CodeCommandParameterTypeNotSuperset,
	CodeReplyFieldContainsValidator,
	CodeCommandParameterContainsValidator,
	CodeCommandParameterValidatorsNotEqual,
	CodeCommandTypeContainsValidator,
	CodeCommandTypeValidatorsNotEqual,
	CodeNewCommandTypeFieldStableRequired,
	CodeNewCommandTypeFieldAddedRequired,
	CodeReplyFieldBSONAnyNotAllowed,
	CodeCommandParameterBSONAnyNotAllowed,
	CodeCommandTypeBSONAnyNotAllowed,
	CodeCommandParameterCppTypeNotEqual,
	CodeCommandCppTypeNotEqual,
	CodeReplyFieldCppTypeNotEqual,
	CodeNewCommandParameterTypeNotVariant,
	CodeNewCommandTypeNotVariant,
	CodeNewCommandParameterVariantNotSuperset,
	CodeNewCommandVariantNotSuperset,
	CodeReplyFieldValidatorsNotEqual,
	CodeCheckNotEqual,
	CodeResourcePatternNotEqual,
	CodeNewActionTypesNotSubset,
	CodeTypeNotArray,
}

// Codes returns every registered Code in numeric order.
func Codes() []Code {
	out := make([]Code, len(allCodes))
	copy(out, allCodes)
	return out
}

// Title returns a short human description of the code, for listings.
func (c Code) Title() string {
	return codeTitle[c]
}

func (c Code) String() string {
	return string(c)
}

// ValidateCodes checks that no two registry entries share a value.
// A collision is a programming defect in the registry, not a runtime
// condition: init panics on it before any diagnostic can be emitted.
func ValidateCodes() error {
	seen := make(map[Code]struct{}, len(allCodes))
	for _, c := range allCodes {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("compat: error code %s registered twice", c)
		}
		seen[c] = struct{}{}
	}
	if len(codeTitle) != len(allCodes) {
		return fmt.Errorf("compat: code titles out of sync with registry: %d titles for %d codes",
			len(codeTitle), len(allCodes))
	}
	return nil
}

func init() {
	if err := ValidateCodes(); err != nil {
		panic(err)
	}
}
