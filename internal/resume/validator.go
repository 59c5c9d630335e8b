package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	embedded "github.com/jonathan/resume-builder/schemas"
)

// Validator checks and normalizes resume input for one layout kind
type Validator interface {
	Validate(input any) error
	Normalize(input any) (*types.ResumeData, error)
}

// Normalizer is the standard Validator. It checks the input shape against the
// resume_data schema, coerces it to types.ResumeData and enforces required fields.
type Normalizer struct {
	validate *validator.Validate
}

// NewNormalizer creates a Normalizer whose field paths use JSON key names
func NewNormalizer() *Normalizer {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Normalizer{validate: v}
}

var (
	defaultOnce       sync.Once
	defaultNormalizer *Normalizer
)

// Default returns the shared standard validator
func Default() Validator {
	defaultOnce.Do(func() {
		defaultNormalizer = NewNormalizer()
	})
	return defaultNormalizer
}

// Validate checks input with the default validator
func Validate(input any) error {
	return Default().Validate(input)
}

// Normalize normalizes input with the default validator
func Normalize(input any) (*types.ResumeData, error) {
	return Default().Normalize(input)
}

// Validate reports whether input normalizes cleanly
func (n *Normalizer) Validate(input any) error {
	_, err := n.Normalize(input)
	return err
}

// Normalize converts input into the canonical record. Accepted inputs are decoded JSON
// maps, raw JSON bytes, and types.ResumeData values (so already-normalized data round-trips).
func (n *Normalizer) Normalize(input any) (*types.ResumeData, error) {
	raw, extra, err := toRaw(input)
	if err != nil {
		return nil, err
	}

	if err := schemas.ValidateDocument(embedded.ResumeData, raw); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) {
			fields := make([]FieldError, 0, len(schemaErr.Errors))
			for _, fe := range schemaErr.Errors {
				fields = append(fields, FieldError{Field: fe.Field, Message: fe.Message})
			}
			return nil, &ValidationError{Message: "resume data has an unsupported shape", Fields: fields}
		}
		return nil, fmt.Errorf("failed to check resume data shape: %w", err)
	}

	data := coerce(raw)
	if extra != nil {
		data.Extra = extra
	}

	if missing := n.missingFields(raw, &data); len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	return &data, nil
}

// missingFields lists required field paths that are empty, e.g. "experience[1].company"
func (n *Normalizer) missingFields(raw map[string]any, data *types.ResumeData) []string {
	var missing []string
	_, hasContact := raw["contact"].(map[string]any)
	if !hasContact {
		missing = append(missing, "contact")
	}

	err := n.validate.Struct(data)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return missing
	}
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		if !hasContact && path == "contact.name" {
			continue
		}
		missing = append(missing, path)
	}
	return missing
}

// Coerce converts input into the canonical record without schema or required-field checks.
// It is the lenient path for layouts that have no registered validator.
func Coerce(input any) (*types.ResumeData, error) {
	raw, extra, err := toRaw(input)
	if err != nil {
		return nil, err
	}
	data := coerce(raw)
	if extra != nil {
		data.Extra = extra
	}
	return &data, nil
}

// toRaw turns any accepted input into a decoded JSON document. For typed input it also
// returns the passthrough keys so their values survive unchanged.
func toRaw(input any) (map[string]any, map[string]any, error) {
	switch v := input.(type) {
	case nil:
		return nil, nil, &ValidationError{Message: "resume data is required"}
	case map[string]any:
		return v, nil, nil
	case []byte:
		return decodeRaw(v)
	case json.RawMessage:
		return decodeRaw(v)
	case string:
		return decodeRaw([]byte(v))
	case *types.ResumeData:
		if v == nil {
			return nil, nil, &ValidationError{Message: "resume data is required"}
		}
		return fromTyped(*v)
	case types.ResumeData:
		return fromTyped(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, nil, &ValidationError{Message: fmt.Sprintf("unsupported input type %T", input), Cause: err}
		}
		return decodeRaw(b)
	}
}

func decodeRaw(b []byte) (map[string]any, map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, nil, &ValidationError{Message: "resume data is not a JSON object", Cause: err}
	}
	if raw == nil {
		return nil, nil, &ValidationError{Message: "resume data is required"}
	}
	return raw, nil, nil
}

func fromTyped(data types.ResumeData) (map[string]any, map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, nil, &ValidationError{Message: "resume data could not be encoded", Cause: err}
	}
	raw, _, err := decodeRaw(b)
	if err != nil {
		return nil, nil, err
	}

	var extra map[string]any
	for k, v := range data.Extra {
		if types.IsResumeField(k) {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return raw, extra, nil
}
