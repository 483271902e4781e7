package compat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testOldDir = "/a/compatibility_test_pass_old"
	testNewDir = "/b/compatibility_test_pass_new"
)

func newTestContext() (*Context, *ErrorCollection) {
	errors := NewErrorCollection()
	return NewContext(testOldDir, testNewDir, errors), errors
}

func TestInvalidAPIVersionRendering(t *testing.T) {
	ctx, errors := newTestContext()
	ctx.ReportCommandInvalidAPIVersion("testCommand", "2", "file.idl")

	lines := errors.Render()
	require.Len(t, lines, 1)
	require.Equal(t,
		"Comparing compatibility_test_pass_old and compatibility_test_pass_new: "+
			"Error in file.idl: ID0001: 'testCommand' has an invalid API version '2'.",
		lines[0])
}

func TestReportsAreDeterministic(t *testing.T) {
	ctx, errors := newTestContext()
	ctx.ReportNewReplyFieldUnstable("cmd", "field", "file.idl")
	ctx.ReportNewReplyFieldUnstable("cmd", "field", "file.idl")

	lines := errors.Render()
	require.Len(t, lines, 2)
	require.Equal(t, lines[0], lines[1])
}

func TestMissingErrorReplyStructHasNoCommand(t *testing.T) {
	ctx, errors := newTestContext()
	ctx.ReportMissingErrorReplyStruct("basic_types.idl")

	err, ok := errors.FirstByCode(CodeMissingErrorReplyStruct)
	require.True(t, ok)
	require.Equal(t, NoCommand, err.Command)
	require.Equal(t, "'basic_types.idl' is missing the ErrorReply struct", err.Message)
}

func TestOldParameterBSONAnyKeepsDoubledQuote(t *testing.T) {
	// The doubled quote after the command name is a latent text defect
	// that downstream golden files pin; it must not be "fixed".
	ctx, errors := newTestContext()
	ctx.ReportOldCommandOrParamTypeBSONAny("cmd", "anyType", "file.idl", Some("f"), CommandParameter)

	err, ok := errors.FirstByCode(CodeOldCommandParameterTypeBSONAny)
	require.True(t, ok)
	require.Contains(t, err.Message, "The 'cmd'' command")
}

func TestOptional(t *testing.T) {
	require.False(t, None.IsSet())
	require.Equal(t, "", None.String())

	f := Some("subField")
	require.True(t, f.IsSet())
	require.Equal(t, "subField", f.String())
}

// Every dual report must resolve the two FieldKind arms to two fixed,
// distinct codes.
func TestDualReportsSelectDistinctCodes(t *testing.T) {
	cases := []struct {
		name      string
		invoke    func(*Context, FieldKind)
		wantParam Code
		wantType  Code
	}{
		{
			name: "type invalid",
			invoke: func(c *Context, k FieldKind) {
				c.ReportCommandOrParamTypeInvalid("cmd", "f.idl", Some("fld"), k)
			},
			wantParam: CodeCommandParameterTypeInvalid,
			wantType:  CodeCommandTypeInvalid,
		},
		{
			name: "type not superset",
			invoke: func(c *Context, k FieldKind) {
				c.ReportCommandOrParamTypeNotSuperset("cmd", "ty", "f.idl", Some("fld"), k)
			},
			wantParam: CodeCommandParameterTypeNotSuperset,
			wantType:  CodeCommandTypeNotSuperset,
		},
		{
			name: "contains validator",
			invoke: func(c *Context, k FieldKind) {
				c.ReportCommandOrParamTypeContainsValidator("cmd", "fld", "f.idl", Some("ty"), k)
			},
			wantParam: CodeCommandParameterContainsValidator,
			wantType:  CodeCommandTypeContainsValidator,
		},
		{
			name: "validators not equal",
			invoke: func(c *Context, k FieldKind) {
				c.ReportCommandOrParamTypeValidatorsNotEqual("cmd", "fld", "f.idl", Some("ty"), k)
			},
			wantParam: CodeCommandParameterValidatorsNotEqual,
			wantType:  CodeCommandTypeValidatorsNotEqual,
		},
		{
			name: "old type bson any",
			invoke: func(c *Context, k FieldKind) {
				c.ReportOldCommandOrParamTypeBSONAny("cmd", "ty", "f.idl", Some("fld"), k)
			},
			wantParam: CodeOldCommandParameterTypeBSONAny,
			wantType:  CodeOldCommandTypeBSONAny,
		},
		{
			name: "new type bson any",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewCommandOrParamTypeBSONAny("cmd", "ty", "f.idl", Some("fld"), k)
			},
			wantParam: CodeNewCommandParameterTypeBSONAny,
			wantType:  CodeNewCommandTypeBSONAny,
		},
		{
			name: "bson any not allowed",
			invoke: func(c *Context, k FieldKind) {
				c.ReportCommandOrParamTypeBSONAnyNotAllowed("cmd", "ty", "f.idl", Some("fld"), k)
			},
			wantParam: CodeCommandParameterBSONAnyNotAllowed,
			wantType:  CodeCommandTypeBSONAnyNotAllowed,
		},
		{
			name: "cpp type not equal",
			invoke: func(c *Context, k FieldKind) {
				c.ReportCommandOrParamCppTypeNotEqual("cmd", "ty", "f.idl", Some("fld"), k)
			},
			wantParam: CodeCommandParameterCppTypeNotEqual,
			wantType:  CodeCommandCppTypeNotEqual,
		},
		{
			name: "enum or struct",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewCommandOrParamTypeEnumOrStruct("cmd", "new", "old", "f.idl", Some("fld"), k)
			},
			wantParam: CodeNewCommandParameterTypeEnumOrStruct,
			wantType:  CodeNewCommandTypeEnumOrStruct,
		},
		{
			name: "not enum",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewCommandOrParamTypeNotEnum("cmd", "new", "old", "f.idl", Some("fld"), k)
			},
			wantParam: CodeNewCommandParameterTypeNotEnum,
			wantType:  CodeNewCommandTypeNotEnum,
		},
		{
			name: "not struct",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewCommandOrParamTypeNotStruct("cmd", "new", "old", "f.idl", Some("fld"), k)
			},
			wantParam: CodeNewCommandParameterTypeNotStruct,
			wantType:  CodeNewCommandTypeNotStruct,
		},
		{
			name: "not variant",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewCommandOrParamTypeNotVariant("cmd", "new", "f.idl", Some("fld"), k)
			},
			wantParam: CodeNewCommandParameterTypeNotVariant,
			wantType:  CodeNewCommandTypeNotVariant,
		},
		{
			name: "variant not superset",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewCommandOrParamVariantTypeNotSuperset("cmd", "alt", "f.idl", Some("fld"), k)
			},
			wantParam: CodeNewCommandParameterVariantNotSuperset,
			wantType:  CodeNewCommandVariantNotSuperset,
		},
		{
			name: "field added required",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewParamOrTypeFieldAddedRequired("cmd", "fld", "f.idl", "ty", k)
			},
			wantParam: CodeAddedRequiredCommandParameter,
			wantType:  CodeNewCommandTypeFieldAddedRequired,
		},
		{
			name: "field missing",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewParamOrTypeFieldMissing("cmd", "fld", "f.idl", "ty", k)
			},
			wantParam: CodeRemovedCommandParameter,
			wantType:  CodeNewCommandTypeFieldMissing,
		},
		{
			name: "field required",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewParamOrTypeFieldRequired("cmd", "fld", "f.idl", Some("ty"), k)
			},
			wantParam: CodeCommandParameterRequired,
			wantType:  CodeNewCommandTypeFieldRequired,
		},
		{
			name: "field stable required",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewParamOrTypeFieldStableRequired("cmd", "fld", "f.idl", Some("ty"), k)
			},
			wantParam: CodeCommandParameterStableRequired,
			wantType:  CodeNewCommandTypeFieldStableRequired,
		},
		{
			name: "field unstable",
			invoke: func(c *Context, k FieldKind) {
				c.ReportNewParamOrTypeFieldUnstable("cmd", "fld", "f.idl", Some("ty"), k)
			},
			wantParam: CodeCommandParameterUnstable,
			wantType:  CodeNewCommandTypeFieldUnstable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, errors := newTestContext()
			tc.invoke(ctx, CommandParameter)
			tc.invoke(ctx, TypeField)

			recs := errors.Errors()
			require.Len(t, recs, 2)
			require.Equal(t, tc.wantParam, recs[0].Code)
			require.Equal(t, tc.wantType, recs[1].Code)
			require.NotEqual(t, recs[0].Code, recs[1].Code)
			require.NotEqual(t, recs[0].Message, recs[1].Message)
		})
	}
}

func TestAppendOnlyOrderingAcrossContextCalls(t *testing.T) {
	ctx, errors := newTestContext()
	ctx.ReportCommandRemoved("first", "a.idl")
	ctx.ReportDuplicateCommandName("second", "dir", "a.idl")
	ctx.ReportNewReplyFieldMissing("third", "fld", "b.idl")
	ctx.ReportCheckNotEqual("fourth", "old", "new", "c.idl")

	lines := errors.Render()
	require.Len(t, lines, 4)
	require.Equal(t, 4, errors.Count())
	for i, cmd := range []string{"first", "second", "third", "fourth"} {
		require.Equal(t, cmd, errors.Errors()[i].Command)
		require.Contains(t, lines[i], string(errors.Errors()[i].Code))
	}
}
