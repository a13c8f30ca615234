package sql

import (
	"strings"
	"unicode"
)

// Tokenize splits a statement on whitespace, except that whitespace between
// single quotes stays inside the token, so 'Alice Smith' is one token.
// Every quote toggles the quoted state; unbalanced quotes are passed through.
func Tokenize(text string) []string {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
	)

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == '\'':
			inQuote = !inQuote
			cur.WriteRune(r)
		case unicode.IsSpace(r) && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// indexToken returns the position of the first token at or after from that
// equals keyword, ignoring case, or -1.
func indexToken(tokens []string, keyword string, from int) int {
	for i := from; i < len(tokens); i++ {
		if strings.EqualFold(tokens[i], keyword) {
			return i
		}
	}
	return -1
}
