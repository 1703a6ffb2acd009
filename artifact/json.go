package artifact

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

type textJSON struct {
	Type  Kind   `json:"type"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value"`
}

type errorJSON struct {
	Type    Kind   `json:"type"`
	Message string `json:"message"`
}

type listJSON struct {
	Type   Kind              `json:"type"`
	Values []json.RawMessage `json:"values"`
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(textJSON{Type: KindText, Name: t.Name, Value: t.Value})
}

func (e Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(errorJSON{Type: KindError, Message: e.Message})
}

func (i Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(textJSON{Type: KindInfo, Value: i.Value})
}

func (l List) MarshalJSON() ([]byte, error) {
	values := make([]json.RawMessage, 0, len(l.Values))
	for _, v := range l.Values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		values = append(values, b)
	}
	return json.Marshal(listJSON{Type: KindList, Values: values})
}

// FromJSON decodes a tagged artifact object. The "type" field is sniffed
// before unmarshalling so callers don't need to know the kind up front.
func FromJSON(b []byte) (Artifact, error) {
	if !gjson.ValidBytes(b) {
		return nil, fmt.Errorf("artifact: invalid JSON")
	}
	kind := Kind(gjson.GetBytes(b, "type").String())
	switch kind {
	case KindText:
		var t textJSON
		if err := json.Unmarshal(b, &t); err != nil {
			return nil, err
		}
		return Text{Name: t.Name, Value: t.Value}, nil
	case KindInfo:
		var t textJSON
		if err := json.Unmarshal(b, &t); err != nil {
			return nil, err
		}
		return Info{Value: t.Value}, nil
	case KindError:
		var e errorJSON
		if err := json.Unmarshal(b, &e); err != nil {
			return nil, err
		}
		return Error{Message: e.Message}, nil
	case KindList:
		var l listJSON
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, err
		}
		out := List{Values: make([]Artifact, 0, len(l.Values))}
		for _, raw := range l.Values {
			nested, err := FromJSON(raw)
			if err != nil {
				return nil, err
			}
			out.Values = append(out.Values, nested)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("artifact: unknown type %q", kind)
	}
}
