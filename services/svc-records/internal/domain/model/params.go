package model

import (
	"net/url"
	"strings"
)

// Params is a flattened request query: one value per key, keys kept in the
// order they first appeared. A repeated key keeps its first position and
// takes the last value.
type Params struct {
	keys   []string
	values map[string]string
}

func NewParams() *Params {
	return &Params{values: make(map[string]string)}
}

// ParseParams reads a raw query string such as "age=5,10&age_op=between".
// Pairs whose escapes cannot be decoded are skipped.
func ParseParams(rawQuery string) *Params {
	params := NewParams()

	for rawQuery != "" {
		var pair string
		pair, rawQuery, _ = strings.Cut(rawQuery, "&")
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil || key == "" {
			continue
		}

		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		params.Set(key, value)
	}

	return params
}

func (p *Params) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}

	p.values[key] = value
}

func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	value, ok := p.values[key]

	return value, ok
}

// Lookup returns the value for key, or fallback when the key is absent or blank.
func (p *Params) Lookup(key, fallback string) string {
	value, ok := p.Get(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)

	return ok
}

func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}
