package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"sharespace/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ключи реестра: "ListingInputRequest/1.0.0", "ListingChangedEvent/1.0.0".
const (
	ListingInputRequest = "ListingInputRequest"
	ListingChangedEvent = "ListingChangedEvent"
	VersionV1           = "1.0.0"
)

// kindSuffixes сопоставляет каталог схем с суффиксом имени контракта.
var kindSuffixes = map[string]string{
	"requests": "Request",
	"events":   "Event",
}

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	for kind := range kindSuffixes {
		err := fs.WalkDir(schemas.SchemasFS, kind, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := schemas.SchemasFS.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and adding schema resources: %v", err)
		}
	}

	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			log.Fatalf("could not compile schema %s: %v", path, err)
		}
		if key := generateKeyFromPath(path); key != "" {
			compiledSchemas[key] = schema
		}
	}
}

// generateKeyFromPath: "events/listing-changed/v1.json" -> "ListingChangedEvent/1.0.0".
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 {
		return ""
	}
	suffix, ok := kindSuffixes[parts[0]]
	if !ok || !strings.HasPrefix(parts[2], "v") {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		name.WriteString(caser.String(p))
	}
	name.WriteString(suffix)

	version := strings.TrimPrefix(parts[2], "v") + ".0.0"
	return fmt.Sprintf("%s/%s", name.String(), version)
}

// Validate проверяет JSON-тело по схеме контракта.
func Validate(contract, version string, body []byte) error {
	key := fmt.Sprintf("%s/%s", contract, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema for contract '%s' version '%s' not found", contract, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("body is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

func ValidateListingInput(body []byte) error {
	return Validate(ListingInputRequest, VersionV1, body)
}

func ValidateListingChangedEvent(body []byte) error {
	return Validate(ListingChangedEvent, VersionV1, body)
}
