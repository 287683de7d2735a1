package payos

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Sign returns the hex HMAC-SHA256 of data rendered as key=value pairs sorted by
// key and joined with '&'.
func Sign(key string, data map[string]any) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(canonical(data)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares signature with the expected checksum in constant time.
func Verify(key string, data map[string]any, signature string) bool {
	if key == "" || signature == "" {
		return false
	}
	expected := Sign(key, data)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

func canonical(data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(stringify(data[k]))
	}
	return b.String()
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		if val == "null" || val == "undefined" {
			return ""
		}
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case map[string]any, []any:
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	default:
		return fmt.Sprint(val)
	}
}
