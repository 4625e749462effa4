package lookup

import (
	"path/filepath"
	"testing"

	"github.com/jus1d/rifmuj/phonetics"
	"github.com/jus1d/rifmuj/record"
	"github.com/jus1d/rifmuj/rhyme"
	"github.com/jus1d/rifmuj/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// wordFrom builds a stored record.Word the way the ingester would, from an
// accented spelling and an explicit (word_id, lemma_id).
func wordFrom(accented string, wordID, lemmaID int64) record.Word {
	spell := stripAccentForTest(accented)
	trans := phonetics.Phonetize(accented)
	return record.Word{
		WordID:  wordID,
		LemmaID: lemmaID,
		Spell:   spell,
		Trans:   trans,
		Rhyme:   rhyme.BasicRhyme(trans),
	}
}

func stripAccentForTest(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\'' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func TestLookupWordSingleRhymeGroup(t *testing.T) {
	s := openTestStore(t)
	words := []record.Word{
		wordFrom("ко'т", 1, 1),
		wordFrom("террако'т", 2, 2),
		wordFrom("боло'т", 3, 3),
	}
	if err := s.Put(words); err != nil {
		t.Fatalf("Put: %v", err)
	}

	result, err := LookupWord(s, "ко'т")
	if err != nil {
		t.Fatalf("LookupWord: %v", err)
	}
	rhymes, ok := result.(Rhymes)
	if !ok {
		t.Fatalf("LookupWord returned %T, want Rhymes", result)
	}
	if len(rhymes.Groups) != 2 {
		t.Fatalf("got %d groups, want 2 (террако'т and боло'т, excluding ко'т's own lemma)", len(rhymes.Groups))
	}
	// террако'т is a closer rhyme than боло'т (its stressed syllable starts
	// with the same к as the query's), so it must rank first.
	if rhymes.Groups[0][0].Text != "терракот" {
		t.Errorf("closest group's form = %q, want %q", rhymes.Groups[0][0].Text, "терракот")
	}
}

func TestLookupWordUnaccentedAmbiguousSpellReturnsVariants(t *testing.T) {
	s := openTestStore(t)
	words := []record.Word{
		wordFrom("за'мок", 1, 1),
		wordFrom("замо'к", 2, 2),
	}
	if err := s.Put(words); err != nil {
		t.Fatalf("Put: %v", err)
	}

	result, err := LookupWord(s, "замок")
	if err != nil {
		t.Fatalf("LookupWord: %v", err)
	}
	variants, ok := result.(Variants)
	if !ok {
		t.Fatalf("LookupWord returned %T, want Variants", result)
	}
	if len(variants.Variants) != 2 {
		t.Errorf("got %d variants, want 2, got %v", len(variants.Variants), variants.Variants)
	}
}

func TestLookupWordAccentedDisambiguatesToOneGroup(t *testing.T) {
	s := openTestStore(t)
	words := []record.Word{
		wordFrom("за'мок", 1, 1),
		wordFrom("замо'к", 2, 2),
		wordFrom("ба'к", 3, 3),
	}
	if err := s.Put(words); err != nil {
		t.Fatalf("Put: %v", err)
	}

	result, err := LookupWord(s, "за'мок")
	if err != nil {
		t.Fatalf("LookupWord: %v", err)
	}
	if _, ok := result.(Rhymes); !ok {
		t.Fatalf("LookupWord(за'мок) returned %T, want Rhymes (the stress mark should disambiguate to one group)", result)
	}
}

func TestLookupWordUnknownSpellingSynthesizesEphemeralResult(t *testing.T) {
	s := openTestStore(t)
	words := []record.Word{
		wordFrom("ко'т", 1, 1),
		wordFrom("террако'т", 2, 2),
	}
	if err := s.Put(words); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// "флот" isn't in the store at all, but shares кот's rhyme class.
	result, err := LookupWord(s, "фло'т")
	if err != nil {
		t.Fatalf("LookupWord: %v", err)
	}
	rhymes, ok := result.(Rhymes)
	if !ok {
		t.Fatalf("LookupWord(фло'т) returned %T, want Rhymes", result)
	}
	if len(rhymes.Groups) != 2 {
		t.Fatalf("got %d groups, want 2 (both stored words rhyme with the synthesized query)", len(rhymes.Groups))
	}
}

func TestCollapseGroupSingleFormIsPrintedInFull(t *testing.T) {
	out := collapseGroup([]string{"терракот"}, []float64{0.1})
	if len(out) != 1 || out[0].Text != "терракот" {
		t.Errorf("collapseGroup single form = %+v, want [{терракот 0.1}]", out)
	}
}

func TestCollapseGroupMultipleFormsShowCommonPrefixOnceAndTails(t *testing.T) {
	out := collapseGroup([]string{"паровоз", "паровозик"}, []float64{0.0, 0.2})
	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
	if out[0].Text != "паровоз" {
		t.Errorf("first form = %q, want the full lowest-distance form %q", out[0].Text, "паровоз")
	}
	if out[1].Text != "-ик" {
		t.Errorf("second form = %q, want %q (tail past the shared prefix)", out[1].Text, "-ик")
	}
}

func TestCollapseGroupNoSharedPrefixFallsBackToFullTails(t *testing.T) {
	out := collapseGroup([]string{"кот", "пёс"}, []float64{0.0, 0.5})
	if out[1].Text != "-пёс" {
		t.Errorf("second form = %q, want %q (no shared prefix, so the tail is the whole word)", out[1].Text, "-пёс")
	}
}

func TestLookupRandomOnEmptyStoreReturnsErrEmptyStore(t *testing.T) {
	s := openTestStore(t)
	if _, err := LookupRandom(s); err != ErrEmptyStore {
		t.Errorf("LookupRandom on empty store = %v, want ErrEmptyStore", err)
	}
}

func TestLookupRandomSkipsWordsWithNoRhymingPartner(t *testing.T) {
	s := openTestStore(t)
	words := []record.Word{
		wordFrom("ко'т", 1, 1),
		wordFrom("террако'т", 2, 2),
		// волк has a rhyme key shared with nothing else in the store.
		wordFrom("во'лк", 3, 3),
	}
	if err := s.Put(words); err != nil {
		t.Fatalf("Put: %v", err)
	}

	result, err := LookupRandom(s)
	if err != nil {
		t.Fatalf("LookupRandom: %v", err)
	}
	rhymes, ok := result.(Rhymes)
	if !ok {
		t.Fatalf("LookupRandom returned %T, want Rhymes", result)
	}
	if len(rhymes.Groups) == 0 {
		t.Error("LookupRandom returned a Rhymes result with no groups")
	}
}
