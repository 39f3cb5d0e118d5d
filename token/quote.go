package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether a string scalar must be quoted when
// emitted as YAML plain text. Quoting is required when the raw text
// would parse back as something else (null/bool/number), when it
// carries structure characters, or when surrounding whitespace would
// be lost.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, "\n:#") {
		return true
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	switch strings.ToLower(v) {
	case "true", "false", "null":
		return true
	}
	return IsNumeric(v)
}

// Quote renders v as a double-quoted scalar, escaping embedded quotes,
// backslashes, and control characters.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				const hex = "0123456789abcdef"
				d = append(d, '\\', 'u',
					hex[(r>>12)&0xf], hex[(r>>8)&0xf], hex[(r>>4)&0xf], hex[r&0xf])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// IsQuoted reports whether v is wrapped in matching single or double
// quotes.
func IsQuoted(v string) bool {
	if len(v) < 2 {
		return false
	}
	switch v[0] {
	case '"', '\'':
		return v[len(v)-1] == v[0]
	}
	return false
}

// Unquote strips matching surrounding quotes and resolves the common
// backslash escapes. Text that is not quoted is returned unchanged.
func Unquote(v string) string {
	if !IsQuoted(v) {
		return v
	}
	inner := v[1 : len(v)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' || i == len(inner)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch inner[i] {
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		default:
			b.WriteByte('\\')
			b.WriteByte(inner[i])
		}
	}
	return b.String()
}
