package main

import (
	"encoding/json"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"

	"mirnaexplorer/mirna"
)

var schemaTypes = map[string]interface{}{
	"mirna":      &mirna.MiRNA{},
	"prediction": &mirna.Prediction{},
	"pathway":    &mirna.Pathway{},
}

// GenerateSchema returns the JSON Schema of one record type
func GenerateSchema(kind string) (*jsonschema.Schema, error) {
	v, ok := schemaTypes[kind]
	if !ok {
		return nil, errors.Errorf("unknown record type %q (want one of %v)", kind, schemaKinds())
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	return reflector.Reflect(v), nil
}

// MarshalSchema renders a schema as indented JSON
func MarshalSchema(kind string) ([]byte, error) {
	schema, err := GenerateSchema(kind)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(schema, "", "  ")
}

func schemaKinds() []string {
	kinds := make([]string, 0, len(schemaTypes))
	for k := range schemaTypes {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
