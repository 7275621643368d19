package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMessage is used when nothing readable can be extracted.
const DefaultMessage = "New notification"

var (
	titleFields   = []string{"title", "subject"}
	messageFields = []string{"message", "content", "body", "description"}
	idFields      = []string{"id", "_id"}
)

// Normalized is the canonical form of an inbound event payload.
type Normalized struct {
	Title   *string
	Message string
	// Data is set only when the payload decoded into an object.
	Data map[string]any
	// Raw is the payload exactly as received.
	Raw any
}

// HasTitle reports whether a title was extracted.
func (n Normalized) HasTitle() bool {
	return n.Title != nil
}

// EmbeddedID returns the identifier carried inside the payload object, if any.
func (n Normalized) EmbeddedID() string {
	if n.Data == nil {
		return ""
	}
	for _, key := range idFields {
		if s, ok := text(n.Data[key]); ok {
			return s
		}
	}
	return ""
}

// Normalize converts raw into a Normalized value. It never panics on
// malformed input.
func Normalize(raw any) Normalized {
	switch v := raw.(type) {
	case nil:
		return Normalized{Message: DefaultMessage, Raw: raw}
	case string:
		return fromString(v, raw)
	case []byte:
		return fromString(string(v), raw)
	case json.RawMessage:
		return fromString(string(v), raw)
	case map[string]any:
		return fromObject(v, "", raw)
	case fmt.Stringer:
		return fromString(v.String(), raw)
	}

	// Structs and typed maps that encode to a JSON object are treated as objects.
	if obj, encoded, ok := asObject(raw); ok {
		return fromObject(obj, encoded, raw)
	}
	return Normalized{Message: fmt.Sprint(raw), Raw: raw}
}

func fromString(s string, raw any) Normalized {
	if s == "" {
		return Normalized{Message: DefaultMessage, Raw: raw}
	}

	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") {
		if obj, ok := decodeObject([]byte(trimmed)); ok {
			return fromObject(obj, trimmed, raw)
		}
	}
	return Normalized{Message: s, Raw: raw}
}

// fromObject extracts title and message from obj. source is the object's
// original JSON text; when set it is the message fallback so key order and
// number formatting survive.
func fromObject(obj map[string]any, source string, raw any) Normalized {
	if obj == nil {
		obj = map[string]any{}
	}

	n := Normalized{Data: obj, Raw: raw}

	if title, ok := firstText(obj, titleFields); ok {
		n.Title = &title
	}

	if msg, ok := firstText(obj, messageFields); ok {
		n.Message = msg
	} else if source != "" {
		n.Message = source
	} else if encoded, err := json.Marshal(obj); err == nil {
		n.Message = string(encoded)
	} else {
		n.Message = DefaultMessage
	}
	return n
}

func firstText(obj map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		if s, ok := text(obj[key]); ok {
			return s, true
		}
	}
	return "", false
}

// text renders a field value, treating empty strings, zero numbers, false and
// null as absent.
func text(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		return "true", t
	case float64:
		if t == 0 {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), t != 0
	case int64:
		return strconv.FormatInt(t, 10), t != 0
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return "", false
		}
		return t.String(), true
	default:
		encoded, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t), true
		}
		return string(encoded), true
	}
}

func asObject(v any) (map[string]any, string, bool) {
	encoded, err := json.Marshal(v)
	if err != nil || len(encoded) == 0 || encoded[0] != '{' {
		return nil, "", false
	}
	obj, ok := decodeObject(encoded)
	if !ok {
		return nil, "", false
	}
	return obj, string(encoded), true
}

// decodeObject decodes b as a single JSON object, keeping numbers as
// json.Number so large integer ids are not rounded.
func decodeObject(b []byte) (map[string]any, bool) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}
	return obj, true
}
