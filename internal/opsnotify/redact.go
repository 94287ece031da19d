package opsnotify

import (
	"regexp"
	"strings"
	"unicode"
)

// RedactedValue replaces the value of any sensitive metadata key.
const RedactedValue = "[REDACTED]"

// sensitiveKeyTokens are matched as substrings of the key lowercased and
// stripped of '-', '_', '.' and spaces, so "api-key", "API_KEY" and "apiKey"
// all match "apikey".
var sensitiveKeyTokens = []string{
	"phone",
	"telefono",
	"celular",
	"mobile",
	"movil",
	"whatsapp",
	"dni",
	"document", // documento, document_id
	"cuit",
	"cuil",
	"mail", // email, e-mail
	"password",
	"passwd",
	"token",
	"secret",
	"authorization",
	"apikey",
	"cookie",
	"credential",
}

// sensitiveKeyWords are too short to match as substrings ("auth" in
// "author", "pass" in "compass"). They match only as a whole word of the
// key, split on separators and camelCase boundaries.
var sensitiveKeyWords = map[string]bool{
	"auth": true,
	"pass": true,
	"pwd":  true,
	"cel":  true,
	"tel":  true,
}

var keySeparators = strings.NewReplacer("-", "", "_", "", ".", "", " ", "")

func isSensitiveKey(key string) bool {
	k := keySeparators.Replace(strings.ToLower(key))
	for _, token := range sensitiveKeyTokens {
		if strings.Contains(k, token) {
			return true
		}
	}
	for _, word := range keyWords(key) {
		if sensitiveKeyWords[word] {
			return true
		}
	}
	return false
}

// keyWords splits "authToken", "X-Auth" or "cel_number" into lowercase words.
func keyWords(key string) []string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	prevLower := false
	for _, r := range key {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if unicode.IsUpper(r) && prevLower {
				flush()
			}
			cur = append(cur, r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		default:
			flush()
			prevLower = false
		}
	}
	flush()
	return words
}

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	digitRunPattern = regexp.MustCompile(`\d(?:[\d\s().-]{4,}\d)`)
)

const maxScrubbedTextLen = 300

// ScrubText masks e-mail addresses and runs of six or more digits (phones,
// DNI, CUIT) in free text such as error strings, then caps its length.
func ScrubText(s string) string {
	s = emailPattern.ReplaceAllString(s, RedactedValue)
	s = digitRunPattern.ReplaceAllStringFunc(s, func(m string) string {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < 6 {
			return m
		}
		return RedactedValue
	})
	return sanitizeText(s, maxScrubbedTextLen)
}

// RedactMetadata returns a deep copy of metadata where every sensitive key,
// at any nesting depth, has its value replaced by RedactedValue.
// The input is never modified.
func RedactMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		if isSensitiveKey(k) {
			out[k] = RedactedValue
			continue
		}
		out[k] = redactValue(v)
	}
	return out
}

func redactValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return RedactMetadata(val)
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return RedactMetadata(m)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = redactValue(item)
		}
		return items
	case []map[string]any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = RedactMetadata(item)
		}
		return items
	default:
		return v
	}
}
