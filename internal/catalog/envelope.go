package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
)

// envelope is an insertion-ordered string map rendered the way the Steam
// documentation shows input_json payloads: {"a": "", "b": ""}.
type envelope struct {
	keys   []string
	values map[string]string
}

func newEnvelope() *envelope {
	return &envelope{values: make(map[string]string)}
}

// Set adds or overwrites key. A repeated key keeps its first position.
func (e *envelope) Set(key, value string) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}

	e.values[key] = value
}

func (e *envelope) Len() int {
	return len(e.keys)
}

func (e *envelope) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	for i, k := range e.keys {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(quote(k))
		sb.WriteString(": ")
		sb.WriteString(quote(e.values[k]))
	}

	sb.WriteString("}")

	return sb.String()
}

func quote(s string) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)

	return strings.TrimSuffix(buf.String(), "\n")
}
