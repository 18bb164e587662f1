// internal/config/decode.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"enigma/core/tables"
	"enigma/pkg/api"
)

var (
	errNotObject = errors.New("expected an object")
	errNull      = errors.New("null value")
)

/* --------------------------------- JSON --------------------------------- */

func decodeJSON(data []byte) (*document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	doc := newDocument()

	if raw, ok := top[api.KeyHashMap]; ok {
		doc.seen[api.KeyHashMap] = true
		err := eachJSONField(raw, func(k string, v json.RawMessage) error {
			var idx int
			if err := unmarshalJSON(v, &idx); err != nil {
				return fmt.Errorf("%s[%q]: %w", api.KeyHashMap, k, err)
			}
			doc.hash = append(doc.hash, tables.Entry{Letter: k, Index: idx})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", api.KeyHashMap, err)
		}
	}

	if raw, ok := top[api.KeyReflectorMap]; ok {
		doc.seen[api.KeyReflectorMap] = true
		err := eachJSONField(raw, func(k string, v json.RawMessage) error {
			var to string
			if err := unmarshalJSON(v, &to); err != nil {
				return fmt.Errorf("%s[%q]: %w", api.KeyReflectorMap, k, err)
			}
			doc.reflector = append(doc.reflector, tables.Pair{From: k, To: to})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", api.KeyReflectorMap, err)
		}
	}

	if raw, ok := top[api.KeyWheels]; ok {
		doc.seen[api.KeyWheels] = true
		var elems []json.RawMessage
		if err := unmarshalJSON(raw, &elems); err != nil {
			return nil, fmt.Errorf("%s: %w", api.KeyWheels, err)
		}
		doc.wheels = make([]int, len(elems))
		for i, v := range elems {
			if err := unmarshalJSON(v, &doc.wheels[i]); err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", api.KeyWheels, i, err)
			}
		}
	}
	return doc, nil
}

// eachJSONField walks the members of a JSON object in document order.
func eachJSONField(raw json.RawMessage, fn func(key string, v json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return errNotObject
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return err
		}
		if err := fn(key, v); err != nil {
			return err
		}
	}
	_, err = dec.Token() // closing brace
	return err
}

// unmarshalJSON rejects null, which encoding/json would silently skip.
func unmarshalJSON(raw json.RawMessage, v any) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errNull
	}
	return json.Unmarshal(raw, v)
}

/* --------------------------------- YAML --------------------------------- */

func decodeYAML(data []byte) (*document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	doc := newDocument()

	top := &root
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return doc, nil
		}
		top = top.Content[0]
	}
	if top.Kind == 0 {
		return doc, nil // empty file
	}
	if top.Kind != yaml.MappingNode {
		return nil, errNotObject
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i].Value, top.Content[i+1]
		switch key {
		case api.KeyHashMap:
			doc.seen[key] = true
			err := eachYAMLField(val, func(k string, v *yaml.Node) error {
				var idx int
				if err := decodeYAMLScalar(v, &idx); err != nil {
					return fmt.Errorf("%s[%q]: %w", key, k, err)
				}
				doc.hash = append(doc.hash, tables.Entry{Letter: k, Index: idx})
				return nil
			})
			if err != nil {
				return nil, err
			}
		case api.KeyReflectorMap:
			doc.seen[key] = true
			err := eachYAMLField(val, func(k string, v *yaml.Node) error {
				var to string
				if err := decodeYAMLScalar(v, &to); err != nil {
					return fmt.Errorf("%s[%q]: %w", key, k, err)
				}
				doc.reflector = append(doc.reflector, tables.Pair{From: k, To: to})
				return nil
			})
			if err != nil {
				return nil, err
			}
		case api.KeyWheels:
			doc.seen[key] = true
			if val.Tag == "!!null" {
				return nil, fmt.Errorf("%s: %w", key, errNull)
			}
			if err := val.Decode(&doc.wheels); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return doc, nil
}

func eachYAMLField(n *yaml.Node, fn func(key string, v *yaml.Node) error) error {
	if n.Kind != yaml.MappingNode {
		return errNotObject
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := fn(n.Content[i].Value, n.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func decodeYAMLScalar(n *yaml.Node, v any) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a scalar, got %s", kindName(n.Kind))
	}
	if n.Tag == "!!null" {
		return errNull
	}
	return n.Decode(v)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
