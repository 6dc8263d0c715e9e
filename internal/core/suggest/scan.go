package suggest

import (
	"fmt"
	"strings"

	"github.com/prixlens/prixlens/internal/core"
)

// ParseError reports an unexpected internal failure while scanning a response
// body. Malformed or truncated input is NOT a ParseError; it degrades to a
// partial or empty result.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "suggestion parse failed"
	}
	return fmt.Sprintf("suggestion parse failed: %s", e.Reason)
}

// ParseSuggestions scans text for brace-delimited object slices and extracts
// one Suggestion per slice, in source order.
//
// The `/search` body is not guaranteed to be a single well-formed JSON
// document, so this deliberately avoids a JSON decoder: it looks for the next
// `{`, pairs it with the nearest following `}`, and pulls the known fields out
// of that slice. Array delimiters and commas between objects are noise. An
// unterminated trailing object is dropped silently. Objects are flat by
// contract with the upstream; nested braces inside a value would break the
// pairing, but none of the known fields can contain them.
//
// The returned error is reserved for internal failures and is nil for any
// malformed-but-scannable input, which yields partial or empty results
// instead.
func ParseSuggestions(text string) (records []core.Suggestion, err error) {
	// Scanning arbitrary upstream text must never take the process down.
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = &ParseError{Reason: fmt.Sprint(r)}
		}
	}()

	records = make([]core.Suggestion, 0)

	pos := 0
	for {
		open := strings.Index(text[pos:], "{")
		if open < 0 {
			return records, nil
		}
		open += pos

		closing := strings.Index(text[open:], "}")
		if closing < 0 {
			// Unterminated trailing object: keep what we have.
			return records, nil
		}
		closing += open

		slice := text[open : closing+1]
		records = append(records, core.Suggestion{
			Designation: extractValue(slice, "designation"),
			Prix:        extractValue(slice, "prix"),
			Unite:       extractValue(slice, "unite"),
			Score:       extractValue(slice, "score"),
			MatchType:   extractValue(slice, "match_type"),
		})

		pos = closing + 1
	}
}

// extractValue pulls the value of key out of one object slice. A missing key
// yields the empty string.
//
// Quoted values run to the next double quote. Escaped quotes inside a value
// are not handled and truncate it there; the upstream never emits them, and
// changing that would alter observed output, so the behavior is kept.
func extractValue(slice, key string) string {
	pattern := `"` + key + `":`
	at := strings.Index(slice, pattern)
	if at < 0 {
		return ""
	}

	rest := strings.TrimLeft(slice[at+len(pattern):], " \t\r\n")
	if rest == "" {
		return ""
	}

	if rest[0] == '"' {
		rest = rest[1:]
		if end := strings.Index(rest, `"`); end >= 0 {
			return rest[:end]
		}
		return ""
	}

	// Bare numeric/literal token: up to the next comma, else to the slice's
	// own closing brace.
	end := strings.Index(rest, ",")
	if end < 0 {
		end = strings.Index(rest, "}")
		if end < 0 {
			end = len(rest)
		}
	}
	return strings.TrimSpace(rest[:end])
}
