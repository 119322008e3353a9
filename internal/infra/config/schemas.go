package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/profile.schema.json
var profileSchemaJSON []byte

var profileSchema *jsonschema.Schema

func init() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(profileSchemaJSON))
	if err != nil {
		panic("failed to parse embedded profile schema: " + err.Error())
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("profile.schema.json", doc); err != nil {
		panic("failed to add profile schema resource: " + err.Error())
	}
	profileSchema, err = compiler.Compile("profile.schema.json")
	if err != nil {
		panic("failed to compile embedded profile schema: " + err.Error())
	}
}

// validateProfileData validates raw YAML profile bytes against the schema.
func validateProfileData(data []byte) error {
	// Route the YAML through JSON so the schema validator sees JSON types.
	var yamlData interface{}
	if err := yaml.Unmarshal(data, &yamlData); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	jsonData, err := json.Marshal(yamlData)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to decode profile for validation: %w", err)
	}
	if err := profileSchema.Validate(instance); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
