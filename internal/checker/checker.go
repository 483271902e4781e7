package checker

import (
	"sort"
	"strings"

	"idlcheck/internal/compat"
	"idlcheck/internal/idl"
)

// errorReplyStruct must exist in every API-versioned IDL file and may
// never be removed.
const errorReplyStruct = "ErrorReply"

// Checker compares two versions of IDL documents and reports every
// incompatibility it finds. A Checker is stateless and safe for
// concurrent use.
type Checker struct {
	cfg *Config
}

func New(cfg *Config) *Checker {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Checker{cfg: cfg}
}

// CheckFilePair reports incompatibilities between the old and new version
// of one IDL file into ctx. Commands are visited in name order so the
// resulting collection is deterministic.
func (ch *Checker) CheckFilePair(ctx *compat.Context, oldDoc, newDoc *idl.Document) {
	if _, ok := oldDoc.Structs[errorReplyStruct]; ok {
		if _, ok := newDoc.Structs[errorReplyStruct]; !ok {
			ctx.ReportMissingErrorReplyStruct(newDoc.File)
		}
	}
	for _, name := range sortedKeys(oldDoc.Commands) {
		if ch.cfg.skipCommand(name) {
			continue
		}
		oldCmd := oldDoc.Commands[name]
		newCmd, ok := newDoc.Commands[name]
		if !ok {
			ctx.ReportCommandRemoved(name, oldDoc.File)
			continue
		}
		ch.checkCommand(ctx, oldCmd, newCmd, oldDoc, newDoc)
	}
}

func (ch *Checker) checkCommand(ctx *compat.Context, oldCmd, newCmd idl.Command, oldDoc, newDoc *idl.Document) {
	file := newDoc.File
	if newCmd.APIVersion != "1" {
		ctx.ReportCommandInvalidAPIVersion(newCmd.Name, newCmd.APIVersion, file)
	}
	if !namespaceCompatible(oldCmd.Namespace, newCmd.Namespace) {
		ctx.ReportNewNamespaceIncompatible(newCmd.Name, oldCmd.Namespace, newCmd.Namespace, file)
	}
	seen := make(map[structPair]bool)
	if !oldCmd.Type.IsZero() || !newCmd.Type.IsZero() {
		ch.checkTypeRef(ctx, newCmd.Name, oldCmd.Type, newCmd.Type, oldDoc, newDoc, compat.None, compat.TypeField, file, seen)
	}
	ch.checkParameters(ctx, newCmd.Name, oldCmd.Fields, newCmd.Fields, oldDoc, newDoc, file, seen)
	ch.checkReply(ctx, newCmd.Name, oldCmd.ReplyType, newCmd.ReplyType, oldDoc, newDoc, file)
	ch.checkAccessCheck(ctx, newCmd.Name, oldCmd.AccessCheck, newCmd.AccessCheck, file)
}

// namespaceCompatible reports whether a command namespace transition is
// allowed. Any namespace may relax to "ignored"; every other change is
// breaking.
func namespaceCompatible(old, new string) bool {
	if old == new {
		return true
	}
	return new == "ignored"
}

// checkParameters compares command parameters by name. Removed stable
// parameters, stability regressions, optionality regressions, and type
// transitions are all reported.
func (ch *Checker) checkParameters(ctx *compat.Context, command string, oldFields, newFields map[string]idl.Field, oldDoc, newDoc *idl.Document, file string, seen map[structPair]bool) {
	ch.checkFieldSet(ctx, command, oldFields, newFields, oldDoc, newDoc, compat.None, compat.CommandParameter, file, seen)
}

// structPair keys one (old struct, new struct) comparison within a
// traversal. Struct definitions may be self- or mutually recursive, so
// every struct-to-struct descent records its pair and revisits stop.
type structPair struct {
	old string
	new string
}

func (ch *Checker) checkFieldSet(ctx *compat.Context, command string, oldFields, newFields map[string]idl.Field, oldDoc, newDoc *idl.Document, typeName compat.Optional, kind compat.FieldKind, file string, seen map[structPair]bool) {
	for _, name := range sortedKeys(oldFields) {
		of := oldFields[name]
		nf, ok := newFields[name]
		if !ok {
			if of.Stable() {
				ctx.ReportNewParamOrTypeFieldMissing(command, name, file, typeName.String(), kind)
			}
			continue
		}
		if of.Stable() && !nf.Stable() {
			ctx.ReportNewParamOrTypeFieldUnstable(command, name, file, typeName, kind)
		}
		if !of.Stable() && nf.Stable() && !nf.Optional {
			ctx.ReportNewParamOrTypeFieldStableRequired(command, name, file, typeName, kind)
		}
		if of.Optional && !nf.Optional {
			ctx.ReportNewParamOrTypeFieldRequired(command, name, file, typeName, kind)
		}
		if nf.Validator != nil {
			if of.Validator == nil {
				ctx.ReportCommandOrParamTypeContainsValidator(command, name, file, typeName, kind)
			} else if !of.Validator.Equal(nf.Validator) {
				ctx.ReportCommandOrParamTypeValidatorsNotEqual(command, name, file, typeName, kind)
			}
		}
		ch.checkTypeRef(ctx, command, of.Type, nf.Type, oldDoc, newDoc, compat.Some(name), kind, file, seen)
	}
	for _, name := range sortedKeys(newFields) {
		if _, ok := oldFields[name]; ok {
			continue
		}
		nf := newFields[name]
		if !nf.Optional && nf.Stable() {
			ctx.ReportNewParamOrTypeFieldAddedRequired(command, name, file, typeName.String(), kind)
		}
	}
}

// checkTypeRef compares a command parameter or command value type between
// versions. The new type must accept everything the old type accepted.
func (ch *Checker) checkTypeRef(ctx *compat.Context, command string, oldRef, newRef idl.TypeRef, oldDoc, newDoc *idl.Document, field compat.Optional, kind compat.FieldKind, file string, seen map[structPair]bool) {
	if oldRef.IsArray() != newRef.IsArray() {
		symbol, name := "command type", command
		if kind == compat.CommandParameter {
			symbol, name = "command parameter", field.String()
		}
		ctx.ReportTypeNotArray(symbol, command, name, newRef.Name, oldRef.Name, file)
	}
	if oldRef.IsVariant() {
		if !newRef.IsVariant() {
			ctx.ReportNewCommandOrParamTypeNotVariant(command, newRef.Name, file, field, kind)
			return
		}
		newAlts := make(map[string]bool, len(newRef.Variant))
		for _, alt := range newRef.Variant {
			newAlts[alt] = true
		}
		for _, alt := range oldRef.Variant {
			if !newAlts[alt] {
				ctx.ReportNewCommandOrParamVariantTypeNotSuperset(command, alt, file, field, kind)
			}
		}
		return
	}
	if newRef.IsVariant() {
		// A plain type may widen to a variant only if the variant still
		// accepts the old type.
		if !contains(newRef.Variant, oldRef.Element()) {
			ctx.ReportNewCommandOrParamVariantTypeNotSuperset(command, oldRef.Element(), file, field, kind)
		}
		return
	}

	oldName, newName := oldRef.Element(), newRef.Element()
	if oldName == "" && newName == "" {
		return
	}
	oldKind, oldType, oldEnum, oldStruct, ok := oldDoc.ResolveType(oldName)
	if !ok {
		ctx.ReportCommandOrParamTypeInvalid(command, file, field, kind)
		return
	}
	newKind, newType, newEnum, newStruct, ok := newDoc.ResolveType(newName)
	if !ok {
		ctx.ReportCommandOrParamTypeInvalid(command, file, field, kind)
		return
	}

	switch oldKind {
	case idl.KindEnum:
		if newKind != idl.KindEnum {
			ctx.ReportNewCommandOrParamTypeNotEnum(command, newName, oldName, file, field, kind)
			return
		}
		// The new enum must keep accepting every old value.
		for _, value := range sortedKeys(oldEnum.Values) {
			if _, ok := newEnum.Values[value]; !ok {
				ctx.ReportCommandOrParamTypeNotSuperset(command, newName, file, field, kind)
				return
			}
		}
	case idl.KindStruct:
		if newKind != idl.KindStruct {
			ctx.ReportNewCommandOrParamTypeNotStruct(command, newName, oldName, file, field, kind)
			return
		}
		pair := structPair{old: oldName, new: newName}
		if seen[pair] {
			return
		}
		seen[pair] = true
		ch.checkFieldSet(ctx, command, oldStruct.Fields, newStruct.Fields, oldDoc, newDoc, compat.Some(newName), compat.TypeField, file, seen)
	default:
		if newKind != idl.KindType {
			ctx.ReportNewCommandOrParamTypeEnumOrStruct(command, newName, oldName, file, field, kind)
			return
		}
		ch.checkScalarType(ctx, command, oldType, newType, file, field, kind)
	}
}

func (ch *Checker) checkScalarType(ctx *compat.Context, command string, oldType, newType idl.Type, file string, field compat.Optional, kind compat.FieldKind) {
	oldAny, newAny := oldType.IsAny(), newType.IsAny()
	allowed := ch.cfg.allowAnyType(oldType.Name) || ch.cfg.allowAny(command, field.String())
	switch {
	case oldAny && newAny:
		if !allowed {
			ctx.ReportCommandOrParamTypeBSONAnyNotAllowed(command, newType.Name, file, field, kind)
			return
		}
		if oldType.CppType != newType.CppType {
			ctx.ReportCommandOrParamCppTypeNotEqual(command, newType.Name, file, field, kind)
		}
	case oldAny:
		ctx.ReportOldCommandOrParamTypeBSONAny(command, oldType.Name, file, field, kind)
	case newAny:
		ctx.ReportNewCommandOrParamTypeBSONAny(command, newType.Name, file, field, kind)
	default:
		if !isSuperset(newType.BSONSerializationType, oldType.BSONSerializationType) {
			ctx.ReportCommandOrParamTypeNotSuperset(command, newType.Name, file, field, kind)
		}
	}
}

// checkReply compares reply structs. Replies flow from server to client,
// so the direction flips: the new reply must not produce anything the old
// reply could not.
func (ch *Checker) checkReply(ctx *compat.Context, command, oldReply, newReply string, oldDoc, newDoc *idl.Document, file string) {
	if oldReply == "" && newReply == "" {
		return
	}
	oldStruct, ok := oldDoc.Structs[oldReply]
	if !ok {
		return
	}
	newStruct, ok := newDoc.Structs[newReply]
	if !ok {
		for _, name := range sortedKeys(oldStruct.Fields) {
			if oldStruct.Fields[name].Stable() {
				ctx.ReportNewReplyFieldMissing(command, name, file)
			}
		}
		return
	}
	seen := map[structPair]bool{{old: oldReply, new: newReply}: true}
	ch.checkReplyFields(ctx, command, oldStruct.Fields, newStruct.Fields, oldDoc, newDoc, file, seen)
}

func (ch *Checker) checkReplyFields(ctx *compat.Context, command string, oldFields, newFields map[string]idl.Field, oldDoc, newDoc *idl.Document, file string, seen map[structPair]bool) {
	for _, name := range sortedKeys(oldFields) {
		of := oldFields[name]
		nf, ok := newFields[name]
		if !ok {
			if of.Stable() {
				ctx.ReportNewReplyFieldMissing(command, name, file)
			}
			continue
		}
		if of.Stable() && !nf.Stable() {
			ctx.ReportNewReplyFieldUnstable(command, name, file)
		}
		if nf.Optional && !of.Optional {
			ctx.ReportNewReplyFieldOptional(command, name, file)
		}
		if nf.Validator != nil {
			if of.Validator == nil {
				ctx.ReportReplyFieldContainsValidator(command, name, file)
			} else if !of.Validator.Equal(nf.Validator) {
				ctx.ReportReplyFieldValidatorsNotEqual(command, name, file)
			}
		}
		ch.checkReplyFieldType(ctx, command, name, of.Type, nf.Type, oldDoc, newDoc, file, seen)
	}
}

func (ch *Checker) checkReplyFieldType(ctx *compat.Context, command, fieldName string, oldRef, newRef idl.TypeRef, oldDoc, newDoc *idl.Document, file string, seen map[structPair]bool) {
	if oldRef.IsVariant() || newRef.IsVariant() {
		if newRef.IsVariant() && !oldRef.IsVariant() {
			ctx.ReportNewReplyFieldVariantType(command, fieldName, oldRef.Name, file)
			return
		}
		if newRef.IsVariant() {
			oldAlts := make(map[string]bool, len(oldRef.Variant))
			for _, alt := range oldRef.Variant {
				oldAlts[alt] = true
			}
			for _, alt := range newRef.Variant {
				if !oldAlts[alt] {
					ctx.ReportNewReplyFieldVariantTypeNotSubset(command, fieldName, alt, file)
				}
			}
			return
		}
		// Old was a variant, new narrowed to a plain type. The plain type
		// must have been one of the alternatives.
		if !contains(oldRef.Variant, newRef.Element()) {
			ctx.ReportNewReplyFieldVariantTypeNotSubset(command, fieldName, newRef.Element(), file)
		}
		return
	}

	oldName, newName := oldRef.Element(), newRef.Element()
	if oldName == "" && newName == "" {
		return
	}
	oldKind, oldType, oldEnum, oldStruct, ok := oldDoc.ResolveType(oldName)
	if !ok {
		ctx.ReportReplyFieldTypeInvalid(command, fieldName, file)
		return
	}
	newKind, newType, newEnum, newStruct, ok := newDoc.ResolveType(newName)
	if !ok {
		ctx.ReportReplyFieldTypeInvalid(command, fieldName, file)
		return
	}

	switch oldKind {
	case idl.KindEnum:
		if newKind != idl.KindEnum {
			ctx.ReportNewReplyFieldTypeNotEnum(command, fieldName, newName, oldName, file)
			return
		}
		// A reply enum may only shrink: every new value must already be
		// an old value.
		for _, value := range sortedKeys(newEnum.Values) {
			if _, ok := oldEnum.Values[value]; !ok {
				ctx.ReportReplyFieldNotSubset(command, fieldName, newName, file)
				return
			}
		}
	case idl.KindStruct:
		if newKind != idl.KindStruct {
			ctx.ReportNewReplyFieldTypeNotStruct(command, fieldName, newName, oldName, file)
			return
		}
		pair := structPair{old: oldName, new: newName}
		if seen[pair] {
			return
		}
		seen[pair] = true
		ch.checkReplyFields(ctx, command, oldStruct.Fields, newStruct.Fields, oldDoc, newDoc, file, seen)
	default:
		if newKind != idl.KindType {
			ctx.ReportNewReplyFieldTypeEnumOrStruct(command, fieldName, newName, oldName, file)
			return
		}
		oldAny, newAny := oldType.IsAny(), newType.IsAny()
		allowed := ch.cfg.allowAnyType(oldType.Name) || ch.cfg.allowAny(command, fieldName)
		switch {
		case oldAny && newAny:
			if !allowed {
				ctx.ReportReplyFieldBSONAnyNotAllowed(command, fieldName, newType.Name, file)
				return
			}
			if oldType.CppType != newType.CppType {
				ctx.ReportReplyFieldCppTypeNotEqual(command, fieldName, newType.Name, file)
			}
		case oldAny:
			ctx.ReportOldReplyFieldBSONAny(command, fieldName, oldType.Name, file)
		case newAny:
			ctx.ReportNewReplyFieldBSONAny(command, fieldName, newType.Name, file)
		default:
			if !isSuperset(oldType.BSONSerializationType, newType.BSONSerializationType) {
				ctx.ReportReplyFieldNotSubset(command, fieldName, newType.Name, file)
			}
		}
	}
}

// checkAccessCheck compares command authorization requirements. Checks
// must stay equal; privileges may only narrow.
func (ch *Checker) checkAccessCheck(ctx *compat.Context, command string, old, new *idl.AccessCheck, file string) {
	if old == nil || new == nil {
		return
	}
	if old.None && new.None {
		return
	}
	oldChecks := append([]string(nil), old.Checks...)
	newChecks := append([]string(nil), new.Checks...)
	sort.Strings(oldChecks)
	sort.Strings(newChecks)
	if strings.Join(oldChecks, ",") != strings.Join(newChecks, ",") {
		ctx.ReportCheckNotEqual(command, strings.Join(oldChecks, ", "), strings.Join(newChecks, ", "), file)
	}
	for i, np := range new.Privileges {
		if i >= len(old.Privileges) {
			ctx.ReportNewActionTypesNotSubset(command, file)
			return
		}
		op := old.Privileges[i]
		if op.ResourcePattern != np.ResourcePattern {
			ctx.ReportResourcePatternNotEqual(command, op.ResourcePattern, np.ResourcePattern, file)
			continue
		}
		if !isSuperset(op.ActionTypes, np.ActionTypes) {
			ctx.ReportNewActionTypesNotSubset(command, file)
		}
	}
}

// isSuperset reports whether every member of sub appears in super.
func isSuperset(super, sub []string) bool {
	members := make(map[string]bool, len(super))
	for _, v := range super {
		members[v] = true
	}
	for _, v := range sub {
		if !members[v] {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
