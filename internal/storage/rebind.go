package storage

import (
	"regexp"
	"strconv"
	"strings"
)

var returningRe = regexp.MustCompile(`(?i)\breturning\b`)

// Rebind replaces every `?` with `$1, $2, ...` from left to right.
// Known limitation: a `?` inside a string literal is rewritten too; queries must bind values instead.
func Rebind(query string) string {
	if !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

func isInsert(query string) bool {
	q := strings.TrimSpace(query)
	return len(q) >= 6 && strings.EqualFold(q[:6], "INSERT")
}

// withReturningID appends RETURNING id to an INSERT that does not already return something.
func withReturningID(query string) string {
	if returningRe.MatchString(query) {
		return query
	}
	q := strings.TrimRight(strings.TrimSpace(query), ";")
	return strings.TrimSpace(q) + " RETURNING id"
}
