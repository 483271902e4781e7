package idl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleIDL = `
global:
  cpp_namespace: "mongo"

types:
  string:
    description: "UTF-8 string"
    cpp_type: "std::string"
    bson_serialization_type: string
  intOrString:
    cpp_type: "IntOrString"
    bson_serialization_type: [int, string]
  anyType:
    cpp_type: "Value"
    bson_serialization_type: any

enums:
  Shape:
    description: "shape discriminator"
    type: string
    values:
      Circle: circle
      Square: square

structs:
  TestReply:
    description: "reply shape"
    fields:
      ok: string
      detail:
        type: string
        optional: true
        stability: unstable

commands:
  testCommand:
    description: "exercise every field form"
    command_name: testCommand
    namespace: ignored
    api_version: 1
    strict: true
    reply_type: TestReply
    fields:
      plain: string
      bounded:
        type: intOrString
        validator:
          gte: 0
          lt: 100
      legacy:
        type: string
        unstable: true
      multi:
        type:
          variant: [string, anyType]
    access_check:
      complex:
        - check: is_authenticated
        - privilege:
            resource_pattern: cluster
            action_type: [advanceClusterTime, bypass]
`

func TestParseSampleDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleIDL), "sample.idl")
	require.NoError(t, err)
	require.Equal(t, "sample.idl", doc.File)

	require.Len(t, doc.Types, 3)
	require.Equal(t, []string{"string"}, doc.Types["string"].BSONSerializationType)
	require.Equal(t, []string{"int", "string"}, doc.Types["intOrString"].BSONSerializationType)
	require.True(t, doc.Types["anyType"].IsAny())
	require.False(t, doc.Types["string"].IsAny())

	require.Equal(t, "circle", doc.Enums["Shape"].Values["Circle"])

	reply := doc.Structs["TestReply"]
	require.Equal(t, "ok", reply.Fields["ok"].Name)
	require.True(t, reply.Fields["ok"].Stable())
	require.True(t, reply.Fields["detail"].Optional)
	require.False(t, reply.Fields["detail"].Stable())

	cmd, ok := doc.Commands["testCommand"]
	require.True(t, ok)
	require.Equal(t, "1", cmd.APIVersion)
	require.Equal(t, "ignored", cmd.Namespace)
	require.True(t, cmd.Strict)
	require.Equal(t, "TestReply", cmd.ReplyType)

	require.Equal(t, "string", cmd.Fields["plain"].Type.Name)
	require.Equal(t, &Validator{GTE: "0", LT: "100"}, cmd.Fields["bounded"].Validator)
	require.Equal(t, StabilityUnstable, cmd.Fields["legacy"].Stability)
	require.True(t, cmd.Fields["multi"].Type.IsVariant())
	require.Equal(t, []string{"string", "anyType"}, cmd.Fields["multi"].Type.Variant)

	require.NotNil(t, cmd.AccessCheck)
	require.Equal(t, []string{"is_authenticated"}, cmd.AccessCheck.Checks)
	require.Len(t, cmd.AccessCheck.Privileges, 1)
	require.Equal(t, "cluster", cmd.AccessCheck.Privileges[0].ResourcePattern)
}

func TestTypeRefArray(t *testing.T) {
	r := TypeRef{Name: "array<string>"}
	require.True(t, r.IsArray())
	require.Equal(t, "string", r.Element())

	plain := TypeRef{Name: "string"}
	require.False(t, plain.IsArray())
	require.Equal(t, "string", plain.Element())
}

func TestResolveType(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleIDL), "sample.idl")
	require.NoError(t, err)

	kind, typ, _, _, ok := doc.ResolveType("string")
	require.True(t, ok)
	require.Equal(t, KindType, kind)
	require.Equal(t, "std::string", typ.CppType)

	kind, _, enum, _, ok := doc.ResolveType("Shape")
	require.True(t, ok)
	require.Equal(t, KindEnum, kind)
	require.Len(t, enum.Values, 2)

	kind, _, _, strct, ok := doc.ResolveType("TestReply")
	require.True(t, ok)
	require.Equal(t, KindStruct, kind)
	require.Len(t, strct.Fields, 2)

	_, _, _, _, ok = doc.ResolveType("nope")
	require.False(t, ok)
}

func TestValidatorEqual(t *testing.T) {
	a := &Validator{GTE: "0"}
	b := &Validator{GTE: "0"}
	c := &Validator{GTE: "1"}
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
	var none *Validator
	require.True(t, none.Equal(nil))
}

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse(strings.NewReader(""), "empty.idl")
	require.NoError(t, err)
	require.Empty(t, doc.Commands)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("commands: [not: a: map"), "bad.idl")
	require.Error(t, err)
}
