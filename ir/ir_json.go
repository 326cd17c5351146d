package ir

import (
	"encoding/json"
	"fmt"
)

// irBase is the JSON shape of the IR structure itself. It describes
// nodes, not document text; see the package doc's JSON Interoperability
// section.
type irBase struct {
	Type   Type     `json:"type"`
	Fields []string `json:"fields,omitempty"`
	Values []*Node  `json:"values,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:   y.Type,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Type {
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		Bool bool `json:"bool"`
	}
	tmp := &C{irBase: irBase{}}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.Bool = tmp.Bool

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("object with %d fields but %d values",
				len(y.Fields), len(y.Values))
		}
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
			v.ParentField = y.Fields[i]
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("array with fields")
		}
		for i, v := range y.Values {
			v.Parent = y
			v.ParentIndex = i
		}
	case BoolType:
		if len(y.Fields) != 0 || len(y.Values) != 0 {
			return fmt.Errorf("bool leaf with children")
		}
	}
	return nil
}

func ToJSON(node *Node) ([]byte, error) {
	return json.MarshalIndent(node, "", "  ")
}

func FromJSON(d []byte) (*Node, error) {
	node := &Node{}
	if err := json.Unmarshal(d, node); err != nil {
		return nil, err
	}
	return node, nil
}
