// Package aspect defines the closed vocabulary of Thaumcraft research
// aspects and provides exact and fuzzy name resolution.
//
// The vocabulary is fixed at build time: 65 aspects, identified by an
// integer code and displayed by their lowercase Latin name. A handful of
// aspects are serialized under a short override key that differs from the
// display name; lookup by key honors that table.
package aspect

import (
	"strconv"
	"strings"

	"github.com/agext/levenshtein"
)

// Aspect identifies one member of the vocabulary.
type Aspect int

const (
	Aer Aspect = iota
	Alienis
	Aqua
	Arbor
	Auram
	Bestia
	Caelum
	Cognitio
	Corpus
	Desidia
	Electrum
	Exanimis
	Fabrico
	Fames
	Gelum
	Gloria
	Gula
	Herba
	Humanus
	Ignis
	Infernus
	Instrumentum
	Invidia
	Ira
	Iter
	Limus
	Lucrum
	Lux
	Luxuria
	Machina
	Magneto
	Messis
	Metallum
	Meto
	Mortuus
	Motus
	Nebrisum
	Ordo
	Pannus
	Perditio
	Perfodio
	Permutatio
	Potentia
	Praecantatio
	Primordium
	Radio
	Sano
	Sensus
	Spiritus
	Strontio
	Superbia
	Tabernus
	Telum
	Tempestas
	Tempus
	Tenebrae
	Terra
	Tutamen
	Vacuos
	Venenum
	Victus
	Vinculum
	Vitium
	Vitreus
	Volatus

	count // number of aspects; must stay last
)

var names = [count]string{
	"aer", "alienis", "aqua", "arbor", "auram", "bestia", "caelum",
	"cognitio", "corpus", "desidia", "electrum", "exanimis", "fabrico",
	"fames", "gelum", "gloria", "gula", "herba", "humanus", "ignis",
	"infernus", "instrumentum", "invidia", "ira", "iter", "limus",
	"lucrum", "lux", "luxuria", "machina", "magneto", "messis",
	"metallum", "meto", "mortuus", "motus", "nebrisum", "ordo",
	"pannus", "perditio", "perfodio", "permutatio", "potentia",
	"praecantatio", "primordium", "radio", "sano", "sensus", "spiritus",
	"strontio", "superbia", "tabernus", "telum", "tempestas", "tempus",
	"tenebrae", "terra", "tutamen", "vacuos", "venenum", "victus",
	"vinculum", "vitium", "vitreus", "volatus",
}

// keyOverrides maps aspects whose serialization key differs from the
// display name. Addon aspects are stored under generated slot keys.
var keyOverrides = map[Aspect]string{
	Primordium: "custom3",
	Gloria:     "custom5",
}

// byKey is the exhaustive lookup table, built once: every serialization
// key (lowercase) to its aspect.
var byKey = func() map[string]Aspect {
	m := make(map[string]Aspect, count)
	for _, a := range All() {
		m[a.Key()] = a
	}
	return m
}()

// All returns the complete vocabulary in declaration order. The returned
// slice is freshly allocated; callers may reorder it.
func All() []Aspect {
	all := make([]Aspect, count)
	for i := range all {
		all[i] = Aspect(i)
	}
	return all
}

// Valid reports whether a denotes a vocabulary member.
func (a Aspect) Valid() bool {
	return a >= 0 && a < count
}

// String returns the lowercase display name, or "aspect(<n>)" for values
// outside the vocabulary.
func (a Aspect) String() string {
	if !a.Valid() {
		return "aspect(" + strconv.Itoa(int(a)) + ")"
	}
	return names[a]
}

// Key returns the serialization key used in player data. For most aspects
// this is the display name; a few use an override key.
func (a Aspect) Key() string {
	if k, ok := keyOverrides[a]; ok {
		return k
	}
	return a.String()
}

// ByKey resolves a serialization key or display name, case-insensitively.
// The second result is false when no aspect matches.
func ByKey(key string) (Aspect, bool) {
	a, ok := byKey[strings.ToLower(key)]
	return a, ok
}

// Match returns the aspect whose display name is most similar to text,
// along with a normalized Levenshtein similarity in [0,1] (1.0 = exact).
// Ties resolve to the aspect declared first; the result is deterministic
// but the tie order carries no meaning.
func Match(text string) (Aspect, float64) {
	input := strings.ToLower(strings.TrimSpace(text))
	params := levenshtein.NewParams()

	best := Aer
	bestScore := -1.0
	for _, a := range All() {
		score := levenshtein.Similarity(names[a], input, params)
		if score > bestScore {
			bestScore = score
			best = a
		}
	}
	return best, bestScore
}
