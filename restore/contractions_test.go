package restore

import (
	"strings"
	"testing"
)

func TestBuiltinContractionsRoundTrip(t *testing.T) {
	table := DefaultContractions()
	if table.Len() == 0 {
		t.Fatal("built-in contraction table is empty")
	}
	for _, key := range table.Keys() {
		want, ok := table.Lookup(key)
		if !ok {
			t.Fatalf("Lookup(%q) missing", key)
		}
		curly := strings.ReplaceAll(key, "'", "’")
		for _, variant := range []string{key, curly, strings.ToUpper(key), strings.ToUpper(curly)} {
			if got := Word(variant); got != want {
				t.Errorf("Word(%q) = %q, want %q", variant, got, want)
			}
		}
	}
}

func TestBuiltinContractionsIncludeOriginalEntries(t *testing.T) {
	want := map[string]string{
		"t'nac":  "can't",
		"t'now":  "won't",
		"t'nod":  "don't",
		"t'ndid": "didn't",
		"t'nsi":  "isn't",
		"t'nasw": "wasn't",
		"t'nera": "aren't",
	}
	table := DefaultContractions()
	for k, v := range want {
		got, ok := table.Lookup(k)
		if !ok || got != v {
			t.Errorf("Lookup(%q) = %q, %v; want %q", k, got, ok, v)
		}
	}
}

func TestLoadContractions(t *testing.T) {
	table, err := LoadContractions(strings.NewReader("\"T’NIA\": \"ain't\"\n"))
	if err != nil {
		t.Fatalf("LoadContractions() error = %v", err)
	}
	if got, ok := table.Lookup("t'nia"); !ok || got != "ain't" {
		t.Fatalf("Lookup(t'nia) = %q, %v", got, ok)
	}
	if keys := table.Keys(); len(keys) != 1 || keys[0] != "t'nia" {
		t.Fatalf("Keys() = %q, want [t'nia]", keys)
	}
}

func TestLoadContractionsEmpty(t *testing.T) {
	table, err := LoadContractions(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadContractions(empty) error = %v", err)
	}
	if table.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", table.Len())
	}
	if _, ok := table.Lookup("t'nac"); ok {
		t.Fatal("empty table should not resolve anything")
	}
}

func TestLoadContractionsRejectsBadEntries(t *testing.T) {
	for _, in := range []string{
		`"": "can't"`,
		`"t'nac": ""`,
		`"t'nac ti": "can't"`,
		`- not a map`,
	} {
		if _, err := LoadContractions(strings.NewReader(in)); err == nil {
			t.Errorf("LoadContractions(%q) expected error", in)
		}
	}
	if _, err := LoadContractions(nil); err == nil {
		t.Error("LoadContractions(nil) expected error")
	}
}

func TestContractionsMerge(t *testing.T) {
	extra, err := LoadContractions(strings.NewReader(`{"t'nac": "cannot", "t'nia": "ain't"}`))
	if err != nil {
		t.Fatalf("LoadContractions() error = %v", err)
	}
	merged := DefaultContractions().Merge(extra)
	if got, _ := merged.Lookup("t'nac"); got != "cannot" {
		t.Fatalf("merged t'nac = %q, want override", got)
	}
	if got, _ := merged.Lookup("t'now"); got != "won't" {
		t.Fatalf("merged t'now = %q, want built-in", got)
	}
	if got, _ := DefaultContractions().Lookup("t'nac"); got != "can't" {
		t.Fatalf("Merge mutated the built-in table: %q", got)
	}
	if merged.Len() != DefaultContractions().Len()+1 {
		t.Fatalf("merged Len() = %d", merged.Len())
	}
}
