package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerKeys lower cases all keys of the given map and its nested maps in place.
// YAML decodes nested sections as map[interface{}]interface{}, those are converted to map[string]interface{}.
func lowerKeys(m map[string]interface{}) {
	for key, val := range m {
		switch nested := val.(type) {
		case map[string]interface{}:
			lowerKeys(nested)
		case map[interface{}]interface{}:
			converted := cast.ToStringMap(nested)
			lowerKeys(converted)
			val = converted
		}

		delete(m, key)
		m[strings.ToLower(key)] = val
	}
}

// JSONLowerParser implements a JSON parser that lower cases all config keys.
type JSONLowerParser struct{}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, ierrors.Errorf("invalid JSON config: %w", err)
	}
	lowerKeys(out)

	return out, nil
}

// Marshal marshals the given config map to JSON bytes.
func (p *JSONLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.Marshal(o)
}

// YAMLLowerParser implements a YAML parser that lower cases all config keys.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, ierrors.Errorf("invalid YAML config: %w", err)
	}
	lowerKeys(out)

	return out, nil
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
