package llm

import (
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/genai"
)

// SchemaType is a JSON value kind
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeBoolean SchemaType = "boolean"
)

// Schema is a backend-neutral response schema. Each client converts it to
// the dialect its API accepts.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Order       []string // property order for objects; also the required set
	Items       *Schema
	Enum        []string
}

// Object builds an object schema whose properties are all required, in order
func Object(props ...Property) *Schema {
	s := &Schema{Type: TypeObject, Properties: make(map[string]*Schema, len(props))}
	for _, p := range props {
		s.Properties[p.Name] = p.Schema
		s.Order = append(s.Order, p.Name)
	}
	return s
}

// Property is a named member of an object schema
type Property struct {
	Name   string
	Schema *Schema
}

// Prop is shorthand for a Property
func Prop(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// ArrayOf builds an array schema
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// String builds a string schema, optionally restricted to values
func String(values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}

// Integer builds an integer schema
func Integer() *Schema {
	return &Schema{Type: TypeInteger}
}

var genaiTypes = map[SchemaType]genai.Type{
	TypeObject:  genai.TypeObject,
	TypeArray:   genai.TypeArray,
	TypeString:  genai.TypeString,
	TypeInteger: genai.TypeInteger,
	TypeNumber:  genai.TypeNumber,
	TypeBoolean: genai.TypeBoolean,
}

// ToGenAI converts the schema for Gemini's responseSchema
func (s *Schema) ToGenAI() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        genaiTypes[s.Type],
		Description: s.Description,
		Enum:        s.Enum,
	}
	if s.Items != nil {
		out.Items = s.Items.ToGenAI()
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.ToGenAI()
		}
		out.Required = append([]string(nil), s.Order...)
		out.PropertyOrdering = append([]string(nil), s.Order...)
	}
	return out
}

var jsonSchemaTypes = map[SchemaType]jsonschema.DataType{
	TypeObject:  jsonschema.Object,
	TypeArray:   jsonschema.Array,
	TypeString:  jsonschema.String,
	TypeInteger: jsonschema.Integer,
	TypeNumber:  jsonschema.Number,
	TypeBoolean: jsonschema.Boolean,
}

// ToJSONSchema converts the schema for OpenAI-compatible response_format
func (s *Schema) ToJSONSchema() *jsonschema.Definition {
	if s == nil {
		return nil
	}
	out := &jsonschema.Definition{
		Type:        jsonSchemaTypes[s.Type],
		Description: s.Description,
		Enum:        s.Enum,
	}
	if s.Items != nil {
		out.Items = s.Items.ToJSONSchema()
	}
	if s.Type == TypeObject {
		out.Properties = make(map[string]jsonschema.Definition, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = *p.ToJSONSchema()
		}
		out.Required = append([]string(nil), s.Order...)
		out.AdditionalProperties = false
	}
	return out
}
