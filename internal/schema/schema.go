// Where: cli/internal/schema/schema.go
// What: Executor option schemas and validation.
// Why: Reject malformed target options before any delegate work starts.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/poruru-code/vue-serve-box/cli/internal/meta"
	"github.com/santhosh-tekuri/jsonschema/v5"
	yamlv3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// executorSchemas maps executor names to their embedded schema files.
var executorSchemas = map[string]string{
	meta.ExecutorServe: "schemas/serve.schema.json",
	meta.ExecutorBuild: "schemas/build.schema.json",
}

var (
	compileOnce sync.Once
	compileErr  error
	compiled    map[string]*jsonschema.Schema
)

// Executors returns the known executor names, sorted.
func Executors() []string {
	names := make([]string, 0, len(executorSchemas))
	for name := range executorSchemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an executor schema is registered.
func Has(executor string) bool {
	_, ok := executorSchemas[executor]
	return ok
}

// ValidateOptions validates an options bag against the executor's schema.
func ValidateOptions(executor string, options map[string]any) error {
	schemas, err := load()
	if err != nil {
		return err
	}
	sch, ok := schemas[executor]
	if !ok {
		return fmt.Errorf("unknown executor: %s", executor)
	}

	document, err := canonicalize(options)
	if err != nil {
		return err
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid %s options: %w", executor, err)
	}
	return nil
}

func load() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		schemas := map[string]*jsonschema.Schema{}
		for executor, file := range executorSchemas {
			payload, err := schemaFS.ReadFile(file)
			if err != nil {
				compileErr = fmt.Errorf("read %s schema: %w", executor, err)
				return
			}
			compiler := jsonschema.NewCompiler()
			if err := compiler.AddResource(file, bytes.NewReader(payload)); err != nil {
				compileErr = fmt.Errorf("register %s schema: %w", executor, err)
				return
			}
			sch, err := compiler.Compile(file)
			if err != nil {
				compileErr = fmt.Errorf("compile %s schema: %w", executor, err)
				return
			}
			schemas[executor] = sch
		}
		compiled = schemas
	})
	return compiled, compileErr
}

// canonicalize converts a YAML-shaped options map into the JSON value tree
// the validator understands.
func canonicalize(options map[string]any) (any, error) {
	if options == nil {
		options = map[string]any{}
	}
	payload, err := yamlv3.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("marshal options: %w", err)
	}
	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("convert options to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("unmarshal options json: %w", err)
	}
	return document, nil
}
