package repo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// encodeJSON marshals v without escaping <, > and &, and without a trailing newline.
// An empty indent gives the compact form.
//
// Characters outside printable ASCII are written as \uXXXX escapes, so the
// published files stay plain ASCII whatever the apk names contain.
func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// escapeNonASCII rewrites every rune from DEL upwards as a \u escape, using a
// surrogate pair above the BMP. data must be valid UTF-8 JSON, non-ASCII runes
// can then only appear inside strings.
func escapeNonASCII(data []byte) []byte {
	out := make([]byte, 0, len(data))

	for len(data) > 0 {
		if data[0] < utf8.RuneSelf-1 {
			out = append(out, data[0])
			data = data[1:]
			continue
		}

		r, size := utf8.DecodeRune(data)
		data = data[size:]

		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
		} else {
			out = fmt.Appendf(out, `\u%04x`, r)
		}
	}

	return out
}

func EncodeIndent(v any) ([]byte, error) {
	return encodeJSON(v, "  ")
}

func EncodeCompact(v any) ([]byte, error) {
	return encodeJSON(v, "")
}
