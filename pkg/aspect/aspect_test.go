package aspect

import (
	"strings"
	"testing"

	"github.com/agext/levenshtein"
)

func TestAll_CoversVocabulary(t *testing.T) {
	all := All()
	if len(all) != int(count) {
		t.Fatalf("All returned %d aspects, want %d", len(all), int(count))
	}
	seen := make(map[string]bool, len(all))
	for _, a := range all {
		if !a.Valid() {
			t.Errorf("All contains invalid aspect %d", int(a))
		}
		name := a.String()
		if name != strings.ToLower(name) {
			t.Errorf("display name %q is not lowercase", name)
		}
		if seen[name] {
			t.Errorf("duplicate display name %q", name)
		}
		seen[name] = true
	}
}

func TestByKey_CaseInsensitive(t *testing.T) {
	a, ok := ByKey("Aqua")
	if !ok || a != Aqua {
		t.Fatalf("ByKey(Aqua) = %v, %v; want aqua, true", a, ok)
	}
	if _, ok := ByKey("no-such-aspect"); ok {
		t.Fatal("ByKey accepted an unknown name")
	}
}

func TestByKey_Overrides(t *testing.T) {
	cases := []struct {
		key  string
		want Aspect
	}{
		{"custom3", Primordium},
		{"CUSTOM3", Primordium},
		{"custom5", Gloria},
		{"Custom5", Gloria},
	}
	for _, tc := range cases {
		got, ok := ByKey(tc.key)
		if !ok || got != tc.want {
			t.Errorf("ByKey(%q) = %v, %v; want %v, true", tc.key, got, ok, tc.want)
		}
	}

	// Override keys replace the display name, so the display name of an
	// overridden aspect must not resolve as a key.
	if _, ok := ByKey("primordium"); ok {
		t.Error("display name of an override aspect resolved as a key")
	}
}

func TestKey_DefaultsToDisplayName(t *testing.T) {
	if got := Aqua.Key(); got != "aqua" {
		t.Errorf("Aqua.Key() = %q, want aqua", got)
	}
	if got := Primordium.Key(); got != "custom3" {
		t.Errorf("Primordium.Key() = %q, want custom3", got)
	}
}

func TestMatch_Exact(t *testing.T) {
	a, score := Match("aqua")
	if a != Aqua || score != 1.0 {
		t.Fatalf("Match(aqua) = %v, %v; want aqua, 1.0", a, score)
	}
	// Case and surrounding space are normalized away.
	a, score = Match("  AQUA ")
	if a != Aqua || score != 1.0 {
		t.Fatalf("Match('  AQUA ') = %v, %v; want aqua, 1.0", a, score)
	}
}

func TestMatch_Typo(t *testing.T) {
	a, score := Match("agwa")
	if a != Aqua {
		t.Fatalf("Match(agwa) = %v, want aqua", a)
	}
	if score >= 1.0 || score <= 0 {
		t.Fatalf("Match(agwa) score = %v, want in (0,1)", score)
	}

	// The winning score must beat any entry further in edit distance.
	arborScore := levenshtein.Similarity("arbor", "agwa", levenshtein.NewParams())
	if score <= arborScore {
		t.Errorf("score for aqua (%v) not above score for arbor (%v)", score, arborScore)
	}
}

func TestMatch_TieIsDeterministic(t *testing.T) {
	a1, s1 := Match("zzzzzz")
	a2, s2 := Match("zzzzzz")
	if a1 != a2 || s1 != s2 {
		t.Fatalf("Match is not deterministic: (%v,%v) vs (%v,%v)", a1, s1, a2, s2)
	}
}

func TestString_Invalid(t *testing.T) {
	if got := Aspect(-1).String(); got != "aspect(-1)" {
		t.Errorf("Aspect(-1).String() = %q", got)
	}
}
