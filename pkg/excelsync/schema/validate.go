package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/ukaji3/excelsync-go/pkg/excelsync/models"
)

const schemaResource = "excelsync-data.json"

// ValidateData checks data, a mapping of sheet name to records, against the
// schema derived from doc. It returns one message per failed constraint; an
// empty result means data is valid. The error is reserved for data that
// cannot be encoded and schemas that fail to compile.
func ValidateData(doc *models.Document, data any) ([]string, error) {
	sch, err := compile(doc)
	if err != nil {
		return nil, err
	}

	instance, err := toJSONValue(map[string]any{"data": data})
	if err != nil {
		return nil, fmt.Errorf("encode data: %w", err)
	}

	err = sch.Validate(instance)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}

	var messages []string
	collectMessages(ve, &messages)
	sort.Strings(messages)
	return messages, nil
}

func compile(doc *models.Document) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(ToJSONSchema(doc))
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(schemaResource, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	sch, err := c.Compile(schemaResource)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return sch, nil
}

// toJSONValue round-trips v through encoding/json so the validator sees
// only the generic JSON types.
func toJSONValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// collectMessages walks the error tree and keeps the leaves, which name the
// individual constraints that failed.
func collectMessages(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectMessages(cause, out)
	}
}
