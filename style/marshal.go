package style

import (
	"bytes"
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// MarshalYAML renders the object as a mapping node so serialization keeps
// the property iteration order.
func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range o.keys {
		var key, val yaml.Node
		key.SetString(k)
		if err := val.Encode(o.vals[k]); err != nil {
			return nil, fmt.Errorf("unable to encode property %s: %w", k, err)
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// MarshalJSON renders the object preserving the property iteration order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, fmt.Errorf("unable to encode property %s: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
