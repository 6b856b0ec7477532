// Package schema validates request bodies against the JSON Schemas embedded
// under schemas/. Top-level files are request contracts addressed by their
// $id; files in schemas/refs are shared definitions they may $ref.
package schema

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas
var embedded embed.FS

const idPrefix = "https://racefuel.app/schemas/"

// Request body contracts.
const (
	UserSync           = idPrefix + "user-sync.json"
	UserUpdate         = idPrefix + "user-update.json"
	FoodItemCreate     = idPrefix + "food-item-create.json"
	FoodItemUpdate     = idPrefix + "food-item-update.json"
	FavoriteCreate     = idPrefix + "favorite-create.json"
	EventCreate        = idPrefix + "event-create.json"
	EventUpdate        = idPrefix + "event-update.json"
	FoodInstanceCreate = idPrefix + "food-instance-create.json"
	FoodInstanceUpdate = idPrefix + "food-instance-update.json"
	GoalsReplace       = idPrefix + "goals-replace.json"
	ConnectionCreate   = idPrefix + "connection-create.json"
	StatusUpdate       = idPrefix + "status-update.json"
	SharedEventCreate  = idPrefix + "shared-event-create.json"
	Preferences        = idPrefix + "preferences.json"
	Color              = idPrefix + "color.json"
)

var (
	ErrMalformed     = errors.New("request body is not valid JSON")
	ErrUnknownSchema = errors.New("there is no schema")
)

// ValidationError lists every violation found in a document, each formatted
// as "field: description".
type ValidationError struct {
	SchemaID string
	Details  []string
}

func (e *ValidationError) Error() string {
	return "the document is not valid: " + strings.Join(e.Details, "; ")
}

// Fields returns the offending field names in the order they were reported.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		field, _, _ := strings.Cut(d, ":")
		fields = append(fields, field)
	}
	return fields
}

// Validator is a utility to validate JSON documents against a known schema
type Validator struct {
	schemaValidators map[string]*gojsonschema.Schema
}

// NewDefaultValidator builds a Validator from the schemas compiled into the binary.
func NewDefaultValidator() (*Validator, error) {
	sub, err := fs.Sub(embedded, "schemas")
	if err != nil {
		return nil, err
	}
	return NewValidatorFromFS(sub)
}

// NewValidatorFromFS creates a new Validator using schemas from schemaFS. Json files
// from / will be used as toplevel schemas, while json files in /refs/ will be used
// as references
func NewValidatorFromFS(schemaFS fs.FS) (*Validator, error) {
	readDir := func(dir string) ([]string, error) {
		var strs []string
		files, err := fs.ReadDir(schemaFS, dir)
		if err != nil {
			return nil, fmt.Errorf("cannot read dir %w", err)
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			fullPath := f.Name()
			if dir != "." {
				fullPath = dir + "/" + f.Name()
			}
			str, err := fs.ReadFile(schemaFS, fullPath)
			if err != nil {
				return nil, fmt.Errorf("cannot read file '%s' %w", f.Name(), err)
			}
			strs = append(strs, string(str))
		}
		return strs, nil
	}

	schemas, err := readDir(".")
	if err != nil {
		return nil, err
	}
	refs, err := readDir("refs")
	if err != nil {
		return nil, err
	}
	return NewValidator(schemas, refs)
}

// NewValidator compiles each top-level schema together with every ref. Top
// level schemas cannot reference each other.
func NewValidator(schemas []string, refs []string) (*Validator, error) {
	type header struct {
		ID string `json:"$id"`
	}
	validator := Validator{schemaValidators: make(map[string]*gojsonschema.Schema)}
	for _, str := range schemas {
		h := header{}
		if err := json.Unmarshal([]byte(str), &h); err != nil {
			return nil, fmt.Errorf("parse error '%v' in schema: '%s'", err, str)
		}
		if h.ID == "" {
			return nil, fmt.Errorf("schema does not contain $id: '%s'", str)
		}

		sl := gojsonschema.NewSchemaLoader()
		for _, ref := range refs {
			if err := sl.AddSchemas(gojsonschema.NewStringLoader(ref)); err != nil {
				return nil, fmt.Errorf("cannot add ref: %w", err)
			}
		}
		compiled, err := sl.Compile(gojsonschema.NewStringLoader(str))
		if err != nil {
			return nil, fmt.Errorf("cannot compile schema %s: %w", h.ID, err)
		}
		validator.schemaValidators[h.ID] = compiled
	}

	return &validator, nil
}

// ValidateBytes validates a raw request body against schemaID. A body that
// is not JSON yields ErrMalformed; a body that violates the schema yields a
// *ValidationError.
func (v *Validator) ValidateBytes(data []byte, schemaID string) error {
	compiled, ok := v.schemaValidators[schemaID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, schemaID)
	}
	if !json.Valid(data) {
		return ErrMalformed
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if result.Valid() {
		return nil
	}

	vErr := &ValidationError{SchemaID: schemaID}
	for _, e := range result.Errors() {
		vErr.Details = append(vErr.Details, fieldOf(e)+": "+e.Description())
	}
	return vErr
}

const rootContext = "(root)"

// fieldOf names the property a result error is about. Missing and unexpected
// properties are reported by gojsonschema against their parent.
func fieldOf(e gojsonschema.ResultError) string {
	field := e.Field()
	switch e.Type() {
	case "required", "additional_property_not_allowed":
		if prop, ok := e.Details()["property"].(string); ok {
			if field == rootContext {
				return prop
			}
			return field + "." + prop
		}
	}
	return field
}
