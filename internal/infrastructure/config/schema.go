package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed world.schema.json
var worldSchemaSource string

var worldSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("world.schema.json", worldSchemaSource)
})

// ValidateWorld checks raw world JSON against the embedded world schema
func ValidateWorld(data []byte) error {
	schema, err := worldSchema()
	if err != nil {
		return fmt.Errorf("failed to compile world schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse world: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid world: %w", err)
	}
	return nil
}
