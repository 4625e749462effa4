// Package lookup is the dispatcher sitting on top of the record store: it
// normalizes a query, resolves it to a stored or synthesized record, and
// either asks the user to disambiguate a stress placement (Variants) or
// ranks and groups that record's rhymes (Rhymes).
package lookup

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jus1d/rifmuj/accent"
	"github.com/jus1d/rifmuj/phonetics"
	"github.com/jus1d/rifmuj/record"
	"github.com/jus1d/rifmuj/rhyme"
	"github.com/jus1d/rifmuj/store"
)

// Result is returned by LookupWord and LookupRandom: either a Variants
// (the query is ambiguous between more than one stress placement) or a
// Rhymes (the query resolved to exactly one word, ranked against its
// rhymes).
type Result interface {
	isResult()
}

// Variants lists the stress placements the caller must choose between.
type Variants struct {
	InputPretty string
	Variants    []string
}

func (Variants) isResult() {}

// Candidate is one displayed rhyming form: either the full form (the
// lowest-distance form within its lemma) or a "-tail" suffix: the part of
// the form past the prefix shared by all of the lemma's forms.
type Candidate struct {
	Text     string
	Distance float64
}

// Rhymes groups a query's rhymes by lemma, each group sorted by distance
// ascending, groups themselves sorted by their best form's distance.
type Rhymes struct {
	InputPretty string
	Groups      [][]Candidate
}

func (Rhymes) isResult() {}

// ErrEmptyStore is returned by LookupRandom when the store holds no words.
var ErrEmptyStore = errors.New("lookup: store is empty")

// randomRetryLimit bounds LookupRandom's retry loop: the spec's "if it has
// no rhymes, retry" is otherwise unconditional, which would spin forever
// against a pathological store where no word has a rhyming partner.
const randomRetryLimit = 1000

// LookupWord runs the full resolution procedure against query: normalize,
// fetch-or-synthesize, restrict by accent, and either report ambiguous
// variants or rank the resolved word's rhymes.
func LookupWord(st *store.Store, query string) (Result, error) {
	normalized := accent.NormalizeAccentedSpell(query)
	wasAccented := accent.IsCorrectlyAccented(normalized)
	spell := accent.NormalizeSpell(normalized)
	inputPretty := accent.PrettifyAccentMarks(normalized)

	stored, err := st.BySpell(spell)
	if err != nil {
		return nil, fmt.Errorf("lookup: fetch %q: %w", spell, err)
	}

	groups := groupByAccentedForm(stored)
	if wasAccented {
		if g, ok := groups[normalized]; ok {
			groups = map[string][]record.Word{normalized: g}
		} else {
			groups = nil
		}
	}

	if len(groups) == 0 {
		var variants []string
		if wasAccented {
			variants = []string{normalized}
		} else {
			variants = accent.AccentVariants(spell)
		}
		groups = make(map[string][]record.Word, len(variants))
		for _, v := range variants {
			trans := phonetics.Phonetize(v)
			groups[v] = []record.Word{record.NewEphemeral(spell, trans, rhyme.BasicRhyme(trans))}
		}
	}

	if len(groups) > 1 {
		keys := make([]string, 0, len(groups))
		for k := range groups {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pretty := make([]string, len(keys))
		for i, k := range keys {
			pretty[i] = accent.PrettifyAccentMarks(k)
		}
		return Variants{InputPretty: inputPretty, Variants: pretty}, nil
	}

	var rep record.Word
	for _, g := range groups {
		rep = g[0]
	}

	rhymes, err := rankRhymes(st, rep)
	if err != nil {
		return nil, err
	}
	return Rhymes{InputPretty: inputPretty, Groups: rhymes}, nil
}

// LookupRandom picks a uniformly random stored word that has at least one
// rhyming partner and ranks its rhymes, retrying on a word with none.
func LookupRandom(st *store.Store) (Result, error) {
	for attempt := 0; attempt < randomRetryLimit; attempt++ {
		w, found, err := st.RandomWord()
		if err != nil {
			return nil, fmt.Errorf("lookup: random word: %w", err)
		}
		if !found {
			return nil, ErrEmptyStore
		}

		rhymes, err := rankRhymes(st, w)
		if err != nil {
			return nil, err
		}
		if len(rhymes) == 0 {
			continue
		}
		return Rhymes{
			InputPretty: accent.PrettifyAccentMarks(accent.AccentByTranscription(w.Spell, w.Trans)),
			Groups:      rhymes,
		}, nil
	}
	return nil, fmt.Errorf("lookup: no word with a rhyming partner found in %d attempts", randomRetryLimit)
}

func groupByAccentedForm(words []record.Word) map[string][]record.Word {
	groups := make(map[string][]record.Word)
	for _, w := range words {
		key := accent.AccentByTranscription(w.Spell, w.Trans)
		groups[key] = append(groups[key], w)
	}
	return groups
}

// rankRhymes fetches rep's rhyming candidates, scores them against rep,
// groups by lemma, and collapses each lemma's forms into display
// candidates.
func rankRhymes(st *store.Store, rep record.Word) ([][]Candidate, error) {
	candidates, err := st.ByRhyme(rep.Rhyme, rep.LemmaID)
	if err != nil {
		return nil, fmt.Errorf("lookup: fetch rhymes for %q: %w", rep.Rhyme, err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	type scored struct {
		word record.Word
		dist float64
		text string
	}
	ranked := make([]scored, len(candidates))
	for i, c := range candidates {
		ranked[i] = scored{
			word: c,
			dist: rhyme.NormalizedRhymeDistance(rep.Trans, c.Trans),
			text: accent.YoficateByTranscription(c.Spell, c.Trans),
		}
	}

	lemmaOrder := make([]int64, 0)
	byLemma := make(map[int64][]scored)
	for _, s := range ranked {
		if _, ok := byLemma[s.word.LemmaID]; !ok {
			lemmaOrder = append(lemmaOrder, s.word.LemmaID)
		}
		byLemma[s.word.LemmaID] = append(byLemma[s.word.LemmaID], s)
	}

	groups := make([][]Candidate, 0, len(lemmaOrder))
	for _, lemmaID := range lemmaOrder {
		forms := byLemma[lemmaID]
		sort.SliceStable(forms, func(i, j int) bool { return forms[i].dist < forms[j].dist })

		texts := make([]string, len(forms))
		dists := make([]float64, len(forms))
		for i, f := range forms {
			texts[i] = f.text
			dists[i] = f.dist
		}
		groups = append(groups, collapseGroup(texts, dists))
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i][0].Distance < groups[j][0].Distance })
	return groups, nil
}

// collapseGroup renders one lemma's sorted forms: the first form in full,
// the rest as "-tail" relative to the longest prefix shared by every form
// in the group.
func collapseGroup(texts []string, dists []float64) []Candidate {
	out := make([]Candidate, len(texts))
	if len(texts) == 1 {
		out[0] = Candidate{Text: texts[0], Distance: dists[0]}
		return out
	}

	runes := make([][]rune, len(texts))
	prefixLen := -1
	for i, t := range texts {
		runes[i] = []rune(t)
		if prefixLen == -1 || len(runes[i]) < prefixLen {
			prefixLen = len(runes[i])
		}
	}
	for prefixLen > 0 && !allShareRunePrefix(runes, prefixLen) {
		prefixLen--
	}

	out[0] = Candidate{Text: texts[0], Distance: dists[0]}
	for i := 1; i < len(texts); i++ {
		out[i] = Candidate{Text: "-" + string(runes[i][prefixLen:]), Distance: dists[i]}
	}
	return out
}

func allShareRunePrefix(runes [][]rune, prefixLen int) bool {
	first := string(runes[0][:prefixLen])
	for _, r := range runes[1:] {
		if string(r[:prefixLen]) != first {
			return false
		}
	}
	return true
}
