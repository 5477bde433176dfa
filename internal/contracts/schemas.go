package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Сначала регистрируем все схемы как ресурсы, чтобы они могли
	// ссылаться друг на друга через `$ref`
	err := fs.WalkDir(schemasFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			file, err := schemasFS.Open(p)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(p, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", p, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(schemasFS, "schemas", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			schema, err := compiler.Compile(p)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", p, err)
				return nil
			}
			compiledSchemas[generateKeyFromPath(p)] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error compiling schemas: %v", err)
	}
}

// generateKeyFromPath превращает "schemas/payment_event.schema.json"
// в ключ "payment_event".
func generateKeyFromPath(p string) string {
	base := path.Base(p)
	base = strings.TrimSuffix(base, ".json")
	return strings.TrimSuffix(base, ".schema")
}

// Validate проверяет payload по зарегистрированной схеме.
func Validate(eventType string, payload []byte) error {
	schema, ok := compiledSchemas[eventType]
	if !ok {
		return fmt.Errorf("no schema registered for event type %q", eventType)
	}

	var doc interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("payload does not match schema %q: %w", eventType, err)
	}
	return nil
}
