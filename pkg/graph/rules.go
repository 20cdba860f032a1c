package graph

import "github.com/thaumic/aspectpath/pkg/aspect"

// Rule records one composition fact: Composite is crafted by combining
// PrimalA and PrimalB. The table below is fixed game data, not
// configuration.
type Rule struct {
	Composite aspect.Aspect
	PrimalA   aspect.Aspect
	PrimalB   aspect.Aspect
}

// compositionRules covers every compound aspect in the vocabulary. The
// remainder (aer, aqua, ignis, ordo, perditio, terra, and the addon
// aspects primordium and gloria) are primal and never appear as a
// Composite here.
var compositionRules = []Rule{
	{aspect.Alienis, aspect.Vacuos, aspect.Tenebrae},
	{aspect.Arbor, aspect.Aer, aspect.Herba},
	{aspect.Auram, aspect.Praecantatio, aspect.Aer},
	{aspect.Bestia, aspect.Motus, aspect.Victus},
	{aspect.Caelum, aspect.Vitreus, aspect.Metallum},
	{aspect.Cognitio, aspect.Ignis, aspect.Spiritus},
	{aspect.Corpus, aspect.Mortuus, aspect.Bestia},
	{aspect.Desidia, aspect.Vinculum, aspect.Spiritus},
	{aspect.Electrum, aspect.Potentia, aspect.Machina},
	{aspect.Exanimis, aspect.Motus, aspect.Mortuus},
	{aspect.Fabrico, aspect.Humanus, aspect.Instrumentum},
	{aspect.Fames, aspect.Victus, aspect.Vacuos},
	{aspect.Gelum, aspect.Ignis, aspect.Perditio},
	{aspect.Gula, aspect.Fames, aspect.Vacuos},
	{aspect.Herba, aspect.Victus, aspect.Terra},
	{aspect.Humanus, aspect.Bestia, aspect.Cognitio},
	{aspect.Infernus, aspect.Ignis, aspect.Praecantatio},
	{aspect.Instrumentum, aspect.Humanus, aspect.Ordo},
	{aspect.Invidia, aspect.Sensus, aspect.Fames},
	{aspect.Ira, aspect.Telum, aspect.Ignis},
	{aspect.Iter, aspect.Motus, aspect.Terra},
	{aspect.Limus, aspect.Victus, aspect.Aqua},
	{aspect.Lucrum, aspect.Humanus, aspect.Fames},
	{aspect.Lux, aspect.Aer, aspect.Ignis},
	{aspect.Luxuria, aspect.Corpus, aspect.Fames},
	{aspect.Machina, aspect.Motus, aspect.Instrumentum},
	{aspect.Magneto, aspect.Metallum, aspect.Iter},
	{aspect.Messis, aspect.Herba, aspect.Humanus},
	{aspect.Metallum, aspect.Terra, aspect.Vitreus},
	{aspect.Meto, aspect.Messis, aspect.Instrumentum},
	{aspect.Mortuus, aspect.Victus, aspect.Perditio},
	{aspect.Motus, aspect.Aer, aspect.Ordo},
	{aspect.Nebrisum, aspect.Perfodio, aspect.Lucrum},
	{aspect.Pannus, aspect.Instrumentum, aspect.Bestia},
	{aspect.Perfodio, aspect.Humanus, aspect.Terra},
	{aspect.Permutatio, aspect.Perditio, aspect.Ordo},
	{aspect.Potentia, aspect.Ordo, aspect.Ignis},
	{aspect.Praecantatio, aspect.Vacuos, aspect.Potentia},
	{aspect.Radio, aspect.Lux, aspect.Potentia},
	{aspect.Sano, aspect.Victus, aspect.Ordo},
	{aspect.Sensus, aspect.Aer, aspect.Spiritus},
	{aspect.Spiritus, aspect.Victus, aspect.Mortuus},
	{aspect.Strontio, aspect.Cognitio, aspect.Perditio},
	{aspect.Superbia, aspect.Volatus, aspect.Vacuos},
	{aspect.Tabernus, aspect.Tutamen, aspect.Iter},
	{aspect.Telum, aspect.Instrumentum, aspect.Ignis},
	{aspect.Tempestas, aspect.Aer, aspect.Aqua},
	{aspect.Tempus, aspect.Vacuos, aspect.Ordo},
	{aspect.Tenebrae, aspect.Vacuos, aspect.Lux},
	{aspect.Tutamen, aspect.Instrumentum, aspect.Terra},
	{aspect.Vacuos, aspect.Aer, aspect.Perditio},
	{aspect.Venenum, aspect.Aqua, aspect.Perditio},
	{aspect.Victus, aspect.Aqua, aspect.Terra},
	{aspect.Vinculum, aspect.Motus, aspect.Perditio},
	{aspect.Vitium, aspect.Praecantatio, aspect.Perditio},
	{aspect.Vitreus, aspect.Terra, aspect.Ordo},
	{aspect.Volatus, aspect.Aer, aspect.Motus},
}

// Rules returns a copy of the composition rule table.
func Rules() []Rule {
	out := make([]Rule, len(compositionRules))
	copy(out, compositionRules)
	return out
}
