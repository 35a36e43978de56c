package restore

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed contractions.yaml
var builtinContractionsYAML []byte

var builtinContractions = mustLoadBuiltinContractions()

// Contractions maps the reversed spelling of a contraction to its canonical
// form. The zero value is an empty table. A table is never mutated after it
// is built, so it can be shared between goroutines.
type Contractions struct {
	m map[string]string
}

// DefaultContractions returns the built-in table.
func DefaultContractions() Contractions {
	return builtinContractions
}

// LoadContractions parses a YAML mapping of reversed spelling to canonical
// contraction. Keys are matched case-insensitively and with either apostrophe
// variant.
func LoadContractions(r io.Reader) (Contractions, error) {
	if r == nil {
		return Contractions{}, fmt.Errorf("nil reader")
	}
	raw := map[string]string{}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return Contractions{}, fmt.Errorf("decode contractions: %w", err)
	}
	m := make(map[string]string, len(raw))
	for k, v := range raw {
		key := contractionKey(k)
		v = strings.TrimSpace(v)
		if key == "" {
			return Contractions{}, fmt.Errorf("contraction key is empty (value %q)", v)
		}
		if v == "" {
			return Contractions{}, fmt.Errorf("contraction %q has an empty value", k)
		}
		if strings.ContainsFunc(key, isSpace) || strings.ContainsFunc(v, isSpace) {
			return Contractions{}, fmt.Errorf("contraction %q -> %q must be a single word", k, v)
		}
		m[key] = v
	}
	return Contractions{m: m}, nil
}

func mustLoadBuiltinContractions() Contractions {
	c, err := LoadContractions(bytes.NewReader(builtinContractionsYAML))
	if err != nil {
		panic("restore: built-in contractions: " + err.Error())
	}
	return c
}

// Merge returns a new table holding c's entries overridden by other's.
func (c Contractions) Merge(other Contractions) Contractions {
	m := make(map[string]string, len(c.m)+len(other.m))
	for k, v := range c.m {
		m[k] = v
	}
	for k, v := range other.m {
		m[k] = v
	}
	return Contractions{m: m}
}

// Lookup returns the canonical contraction for token.
func (c Contractions) Lookup(token string) (string, bool) {
	if len(c.m) == 0 {
		return "", false
	}
	v, ok := c.m[contractionKey(token)]
	return v, ok
}

func (c Contractions) Len() int {
	return len(c.m)
}

// Keys returns the table keys in ASCII-apostrophe form, sorted.
func (c Contractions) Keys() []string {
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contractionKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "\u2019", "'")
}
