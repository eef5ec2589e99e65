package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	gotoml "github.com/pelletier/go-toml/v2"
)

// GenerateJSONSchema returns the JSON schema of Config
func GenerateJSONSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "mapstructure"
	r.DoNotReference = true
	r.ExpandedStruct = true
	schema := r.Reflect(&Config{})
	schema.Title = "flowclient config file"
	schema.Description = "Configuration of the Flow access client, account manager and event watcher"
	return json.MarshalIndent(schema, "", "  ")
}

// formatTOML normalizes a rendered config, it fails if the data is not valid TOML
func formatTOML(data string) (string, error) {
	var values map[string]interface{}
	if err := gotoml.Unmarshal([]byte(data), &values); err != nil {
		return "", fmt.Errorf("rendered config is not valid TOML: %w", err)
	}
	out, err := gotoml.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("formatting rendered config: %w", err)
	}
	return string(out), nil
}
