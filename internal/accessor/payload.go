package accessor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Payload is a response body in normalized JSON form: numbers in their
// shortest form, duplicate object keys collapsed to the last value, and
// object keys otherwise kept in the order the server sent them.
type Payload json.RawMessage

// Decode unmarshals the payload into v.
func (p Payload) Decode(v any) error {
	if len(p) == 0 {
		return fmt.Errorf("empty payload")
	}
	return json.Unmarshal(p, v)
}

// Get returns the value at a gjson path such as "version" or "tables.0.name".
func (p Payload) Get(path string) gjson.Result {
	return gjson.GetBytes(p, path)
}

// Indent renders the payload with four space indentation and a trailing
// newline.
func (p Payload) Indent() ([]byte, error) {
	var buf bytes.Buffer
	src := bytes.TrimSpace(p)
	if len(src) == 0 {
		buf.WriteString("null")
	} else if err := json.Indent(&buf, src, "", "    "); err != nil {
		return nil, fmt.Errorf("formatting response: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (p Payload) String() string {
	return string(p)
}

// payloadFromBody turns a 200 response body into a Payload. Bodies that are
// not JSON are kept as a JSON string; an empty body becomes null.
func payloadFromBody(body []byte) Payload {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Payload("null")
	}
	if gjson.ValidBytes(trimmed) {
		return Payload(normalizeJSON(gjson.ParseBytes(trimmed)))
	}
	return Payload(encodeString(string(trimmed)))
}

// normalizeJSON re-encodes a parsed document compactly, as a JavaScript
// parse and stringify round trip would.
func normalizeJSON(r gjson.Result) []byte {
	var buf bytes.Buffer
	writeNormalized(&buf, r)
	return buf.Bytes()
}

func writeNormalized(buf *bytes.Buffer, r gjson.Result) {
	switch {
	case r.IsObject():
		var keys []string
		values := map[string]gjson.Result{}
		r.ForEach(func(k, v gjson.Result) bool {
			key := k.String()
			if _, seen := values[key]; !seen {
				keys = append(keys, key)
			}
			values[key] = v
			return true
		})
		buf.WriteByte('{')
		for i, key := range orderKeys(keys) {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(encodeString(key))
			buf.WriteByte(':')
			writeNormalized(buf, values[key])
		}
		buf.WriteByte('}')
	case r.IsArray():
		buf.WriteByte('[')
		i := 0
		r.ForEach(func(_, v gjson.Result) bool {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeNormalized(buf, v)
			i++
			return true
		})
		buf.WriteByte(']')
	case r.Type == gjson.String:
		buf.Write(encodeString(r.String()))
	case r.Type == gjson.Number:
		buf.WriteString(formatNumber(r.Float()))
	case r.Type == gjson.True, r.Type == gjson.False:
		buf.WriteString(r.Raw)
	default:
		buf.WriteString("null")
	}
}

// orderKeys puts array-index keys first in ascending numeric order, followed
// by the remaining keys in insertion order.
func orderKeys(keys []string) []string {
	var indexes, names []string
	for _, k := range keys {
		if isArrayIndex(k) {
			indexes = append(indexes, k)
		} else {
			names = append(names, k)
		}
	}
	if len(indexes) == 0 {
		return keys
	}
	sort.Slice(indexes, func(i, j int) bool {
		a, _ := strconv.ParseUint(indexes[i], 10, 32)
		b, _ := strconv.ParseUint(indexes[j], 10, 32)
		return a < b
	})
	return append(indexes, names...)
}

func isArrayIndex(k string) bool {
	n, err := strconv.ParseUint(k, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return false
	}
	return strconv.FormatUint(n, 10) == k
}

// formatNumber prints f the way JavaScript's Number#toString does.
func formatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsNaN(f) || math.IsInf(f, 0):
		return "null"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[0]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + string(sign) + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func encodeString(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
