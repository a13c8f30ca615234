package sql

import "strings"

// extractBracketed returns the text strictly between the first open and the
// first close that follows it.
func extractBracketed(s, open, close string) (string, error) {
	start := strings.Index(s, open)
	if start == -1 {
		return "", Errorf(KindSyntax, "missing %q", open)
	}
	rest := s[start+len(open):]
	end := strings.Index(rest, close)
	if end == -1 {
		return "", Errorf(KindSyntax, "missing %q after %q", close, open)
	}
	return rest[:end], nil
}

// afterBracketed returns the text following the close that ends the first
// bracketed section, or "" if there is none.
func afterBracketed(s, open, close string) string {
	start := strings.Index(s, open)
	if start == -1 {
		return ""
	}
	rest := s[start+len(open):]
	end := strings.Index(rest, close)
	if end == -1 {
		return ""
	}
	return rest[end+len(close):]
}

// splitCommaSeparated splits on commas, trims each piece and drops empty ones.
// A comma inside a single-quoted literal does not split.
func splitCommaSeparated(s string) []string {
	var (
		out     []string
		start   int
		inQuote bool
	)

	add := func(p string) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				add(s[start:i])
				start = i + 1
			}
		}
	}
	add(s[start:])

	return out
}

// cutTableName strips a column list glued to a table name, as in "student(id,name)".
func cutTableName(tok string) string {
	if i := strings.Index(tok, "("); i != -1 {
		return tok[:i]
	}
	return tok
}

// trimStatement removes surrounding whitespace and one trailing ';'.
func trimStatement(query string) string {
	q := strings.TrimSpace(query)
	if strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(q[:len(q)-1])
	}
	return q
}
