// Package headers turns the heterogeneous header layouts of webhook
// providers into the canonical signature token each provider's verifier
// consumes, and exposes the provider-to-header-name directory for
// diagnostics.
package headers

import (
	"net/http"
	"strings"
)

// Map is an HTTP header map with case-insensitive lookup and
// first-of-list semantics for list-valued headers
type Map map[string][]string

// Get returns the first value of the named header, matching the name
// case-insensitively. Missing headers return the empty string.
func (m Map) Get(name string) string {
	for key, values := range m {
		if strings.EqualFold(key, name) && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// FromHTTP adapts a standard header container
func FromHTTP(h http.Header) Map {
	return Map(h)
}

// FromValues adapts a flat single-valued header map
func FromValues(values map[string]string) Map {
	m := make(Map, len(values))
	for key, value := range values {
		m[key] = []string{value}
	}
	return m
}
