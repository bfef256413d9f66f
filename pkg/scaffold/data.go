package scaffold

import "fmt"

// Data is the template data for one scaffold run: the values templates and
// path substitution read from. Treat it as immutable; use With to extend.
type Data map[string]interface{}

// Clone returns a deep copy. Nested maps and slices are copied so the clone
// can be extended without affecting d.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

// With returns a copy of d with extra applied on top.
func (d Data) With(extra map[string]interface{}) Data {
	out := d.Clone()
	for k, v := range extra {
		out[k] = cloneValue(v)
	}
	return out
}

// String returns the value for key formatted as a string, "" when absent.
func (d Data) String(key string) string {
	v, ok := d[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Data:
		return val.Clone()
	case map[string]interface{}:
		return map[string]interface{}(Data(val).Clone())
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}
