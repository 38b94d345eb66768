package jsonpointer

// Get walks doc along already-unescaped tokens. Objects (map[string]any) are
// indexed by key and arrays ([]any) by canonical decimal index. It reports
// false as soon as a token does not name an existing member.
func Get(doc any, tokens ...string) (any, bool) {
	cur := doc
	for _, tok := range tokens {
		next, ok := Member(cur, tok)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Member returns the direct member of v named by token.
func Member(v any, token string) (any, bool) {
	switch node := v.(type) {
	case map[string]any:
		child, ok := node[token]
		return child, ok
	case []any:
		idx, ok := ParseIndex(token)
		if !ok || idx >= len(node) {
			return nil, false
		}
		return node[idx], true
	default:
		return nil, false
	}
}

// ParseIndex parses an array index token. Only canonical non-negative decimal
// integers are accepted: no sign, no leading zeros except "0" itself.
func ParseIndex(token string) (int, bool) {
	if token == "" || len(token) > 18 {
		return 0, false
	}
	if len(token) > 1 && token[0] == '0' {
		return 0, false
	}
	n := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
