// Package text provides normalization and tokenization for free-form strings
// entered by users (skill names, job descriptions, titles).
package text

import "strings"

// stopWords are tokens ignored by Tokenize. They carry no signal when
// matching skills or keywords against job text.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"or": {}, "that": {}, "the": {}, "to": {}, "with": {}, "you": {},
	"your": {}, "we": {}, "our": {}, "they": {}, "their": {},
	"will": {}, "can": {}, "may": {},
}

// Normalize lower-cases s and replaces every character outside
// [a-z0-9+.#\s-] with a single space. The preserved punctuation keeps
// tokens like "C++", "C#", ".NET" and "Node.js" distinguishable.
func Normalize(s string) string {
	lower := strings.ToLower(s)
	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '+' || r == '.' || r == '#' || r == '-':
			sb.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f':
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Tokenize normalizes s and splits it into meaningful words: tokens of
// length <= 1 and stop words are dropped.
func Tokenize(s string) []string {
	fields := strings.Fields(Normalize(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 1 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// IncludesPhrase reports whether the normalized haystack contains the
// normalized, trimmed phrase as a contiguous substring. Matching is not
// token-boundary aware: "java" is found inside "javascript". Callers that
// care scan longer phrases first.
func IncludesPhrase(haystack, phrase string) bool {
	return strings.Contains(Normalize(haystack), strings.TrimSpace(Normalize(phrase)))
}
