package store

// Entity is a schemaless document: a key plus a flat property map. Allowed
// property values are string, int/int64, bool and []string; numbers read
// back from the postgres engine arrive as float64, so the accessors below
// normalize.
type Entity struct {
	Key   *Key
	Props map[string]any
}

func NewEntity(key *Key) *Entity {
	return &Entity{Key: key, Props: map[string]any{}}
}

func (e *Entity) Str(name string) string {
	s, _ := e.Props[name].(string)
	return s
}

func (e *Entity) Int(name string) int {
	switch v := e.Props[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (e *Entity) Bool(name string) bool {
	b, _ := e.Props[name].(bool)
	return b
}

func (e *Entity) Strings(name string) []string {
	switch v := e.Props[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// clone returns a deep copy so callers never alias stored state.
func (e *Entity) clone() *Entity {
	props := make(map[string]any, len(e.Props))
	for k, v := range e.Props {
		if ss, ok := v.([]string); ok {
			v = append([]string(nil), ss...)
		}
		props[k] = v
	}
	return &Entity{Key: e.Key, Props: props}
}
