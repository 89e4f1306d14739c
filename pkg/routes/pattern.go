package routes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPattern indicates a route pattern that cannot be read as a path template.
var ErrMalformedPattern = errors.New("malformed route pattern")

// Simplify converts a route pattern into a readable path template where every
// variable segment is written as {name}.
//
// Three pattern dialects are understood and may be mixed:
//
//	regex:      ^users/(?P<id>[0-9]+)/$    -> /users/{id}/
//	angle:      users/<int:id>/            -> /users/{id}/
//	servemux:   /users/{id}/{path...}      -> /users/{id}/{path}
//	chi:        /users/{id:[0-9]+}         -> /users/{id}
//
// Named groups (?P<name>...) and (?<name>...) become {name}. Unnamed groups
// become {var}. Non-capturing and flag groups are unwrapped, except that a
// non-capturing alternation such as (?:a|b) becomes {var}. Character classes and
// class escapes such as \d are kept as written. The anchors ^ and $,
// the ? quantifier and escape backslashes are removed, repeated slashes collapse,
// and the result always starts with "/". The ServeMux end marker {$} is dropped.
func Simplify(pattern string) (string, error) {
	path, err := expand(pattern)
	if err != nil {
		return "", err
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path, nil
}

func expand(pattern string) (string, error) {
	var b strings.Builder
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch c {
		case '\\':
			if i+1 < len(pattern) {
				if isClassEscape(pattern[i+1]) {
					b.WriteByte('\\')
				}
				b.WriteByte(pattern[i+1])
			}
			i += 2
		case '[':
			end := closingBracket(pattern, i)
			if end < 0 {
				return "", malformed(pattern, "unterminated '[' at offset %d", i)
			}
			b.WriteString(pattern[i : end+1])
			i = end + 1
		case '^', '$', '?':
			i++
		case '(':
			end, err := closingParen(pattern, i)
			if err != nil {
				return "", err
			}
			placeholder, err := groupPlaceholder(pattern[i : end+1])
			if err != nil {
				return "", err
			}
			b.WriteString(placeholder)
			i = end + 1
		case ')':
			return "", malformed(pattern, "unexpected ')' at offset %d", i)
		case '<':
			end := strings.IndexByte(pattern[i:], '>')
			if end < 0 {
				return "", malformed(pattern, "unterminated '<' at offset %d", i)
			}
			inner := pattern[i+1 : i+end]
			if j := strings.LastIndexByte(inner, ':'); j >= 0 {
				inner = inner[j+1:]
			}
			if !validName(inner) {
				return "", malformed(pattern, "invalid parameter name %q", inner)
			}
			b.WriteString("{" + inner + "}")
			i += end + 1
		case '{':
			end := closingBrace(pattern, i)
			if end < 0 {
				return "", malformed(pattern, "unterminated '{' at offset %d", i)
			}
			inner := pattern[i+1 : end]
			i = end + 1
			if inner == "$" {
				continue
			}
			if isQuantifier(inner) {
				b.WriteString("{" + inner + "}")
				continue
			}
			inner, _, _ = strings.Cut(inner, ":")
			inner = strings.TrimSuffix(inner, "...")
			if !validName(inner) {
				return "", malformed(pattern, "invalid parameter name %q", inner)
			}
			b.WriteString("{" + inner + "}")
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

// closingParen returns the index of the parenthesis that closes the group opened
// at start. Escapes and character classes are skipped.
func closingParen(pattern string, start int) (int, error) {
	depth := 0
	inClass := false
	for i := start; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, malformed(pattern, "unbalanced '(' at offset %d", start)
}

// closingBrace returns the index of the brace that closes the one opened at
// start, or -1. Braces nest so that {id:[0-9]{4}} is read whole.
func closingBrace(pattern string, start int) int {
	depth := 0
	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// closingBracket returns the index of the "]" that closes the character class
// opened at start, or -1. A "]" first in the class is a literal.
func closingBracket(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && pattern[i] == '^' {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for ; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

// alternates reports whether body has a "|" outside nested groups and classes.
func alternates(body string) bool {
	depth := 0
	inClass := false
	for i := 0; i < len(body); i++ {
		switch c := body[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == '|' && depth == 0:
			return true
		}
	}
	return false
}

// isClassEscape reports whether \c is a regex class or assertion escape such as
// \d or \b, which is kept as written. Other escapes stand for the character itself.
func isClassEscape(c byte) bool {
	return strings.IndexByte("dDwWsSbBAzZ", c) >= 0
}

// groupPlaceholder returns the template text for a complete group, including
// its enclosing parentheses.
func groupPlaceholder(group string) (string, error) {
	if !strings.HasPrefix(group, "(?") {
		return "{var}", nil
	}

	rest := group[2:]
	switch {
	case strings.HasPrefix(rest, "P<"):
		return namedGroup(group, rest[2:])
	case strings.HasPrefix(rest, "<") && !strings.HasPrefix(rest, "<=") && !strings.HasPrefix(rest, "<!"):
		return namedGroup(group, rest[1:])
	case strings.HasPrefix(rest, ":"):
		body := rest[1 : len(rest)-1]
		if alternates(body) {
			return "{var}", nil
		}
		return expand(body)
	}

	// flag groups: (?i) or (?i:...)
	body := rest[:len(rest)-1]
	flags, inner, _ := strings.Cut(body, ":")
	if flags == "" || strings.Trim(flags, "imsU-") != "" {
		return "", malformed(group, "unsupported group syntax")
	}
	return expand(inner)
}

func namedGroup(group, rest string) (string, error) {
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return "", malformed(group, "unterminated group name")
	}
	name := rest[:end]
	if !validName(name) {
		return "", malformed(group, "invalid group name %q", name)
	}
	return "{" + name + "}", nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// isQuantifier reports whether s is the body of a regex repetition such as {4} or {2,3}.
func isQuantifier(s string) bool {
	if s == "" || s[0] == ',' {
		return false
	}
	return strings.Trim(s, "0123456789,") == ""
}

func malformed(pattern, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrMalformedPattern, pattern, fmt.Sprintf(format, args...))
}
