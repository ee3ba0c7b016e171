// Package urlstate mirrors the filter state into a URL-shareable
// query string. It is a one-way projection, never a source of truth.
package urlstate

import (
	"net/url"
	"strings"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
)

const (
	categoryKey = "cat"
	queryKey    = "q"
)

// Encode renders fs as a flat query string. Default values are
// omitted, so the default state encodes to the empty string.
func Encode(fs domain.FilterState) string {
	params := url.Values{}
	if fs.Category != "" && fs.Category != domain.CategoryAll {
		params.Set(categoryKey, fs.Category)
	}
	if fs.Query != "" {
		params.Set(queryKey, fs.Query)
	}
	return params.Encode()
}

// Decode parses a shareable representation, tolerating a leading "#"
// or "?". Unknown keys are ignored. The category is applied only when
// knownCategory accepts it; the query is taken verbatim. Malformed
// input yields the default state.
func Decode(raw string, knownCategory func(string) bool) domain.FilterState {
	fs := domain.DefaultFilterState()

	raw = strings.TrimPrefix(raw, "#")
	raw = strings.TrimPrefix(raw, "?")
	params, err := url.ParseQuery(raw)
	if err != nil {
		return fs
	}

	if cat := params.Get(categoryKey); cat != "" && knownCategory(cat) {
		fs.Category = cat
	}
	if params.Has(queryKey) {
		fs.Query = params.Get(queryKey)
	}
	return fs
}
