package rhyme

import (
	"testing"

	"github.com/jus1d/rifmuj/phonetics"
)

func trans(accentedSpell string) string {
	return phonetics.Phonetize(accentedSpell)
}

func TestBasicRhyme(t *testing.T) {
	tests := []struct {
		accent string
		want   string
	}{
		{"а'", "A"},
		{"голова'", "vA"},
		{"голо'в", "Of"},
	}
	for _, tt := range tests {
		t.Run(tt.accent, func(t *testing.T) {
			got := BasicRhyme(trans(tt.accent))
			if got != tt.want {
				t.Errorf("BasicRhyme(Phonetize(%q)) = %q, want %q", tt.accent, got, tt.want)
			}
		})
	}
}

func TestBasicRhymeEmptyWithoutStress(t *testing.T) {
	if got := BasicRhyme("galava"); got != "" {
		t.Errorf("BasicRhyme of an unstressed transcription = %q, want empty", got)
	}
}

func TestNormalizedRhymeDistanceIdentity(t *testing.T) {
	words := []string{"па'лка", "ко'т", "Во'лга", "гли'ст"}
	for _, w := range words {
		tr := trans(w)
		if got := NormalizedRhymeDistance(tr, tr); got != 0 {
			t.Errorf("NormalizedRhymeDistance(%q, %q) = %v, want 0", tr, tr, got)
		}
	}
}

func TestNormalizedRhymeDistanceRange(t *testing.T) {
	a, b := trans("па'лка"), trans("га'лка")
	d := NormalizedRhymeDistance(a, b)
	if d < 0 || d > 1 {
		t.Errorf("NormalizedRhymeDistance(%q, %q) = %v, want value in [0,1]", a, b, d)
	}
}

func TestNormalizedRhymeDistanceNoRhymeIsOne(t *testing.T) {
	if got := NormalizedRhymeDistance("galava", trans("ко'т")); got != 1 {
		t.Errorf("NormalizedRhymeDistance with no stressed vowel = %v, want 1", got)
	}
}

// TestRhymeRanking checks the relative ordering the lookup path relies on:
// a closer rhyme must score a strictly lower distance against the same
// query than a more distant one sharing the same basic rhyme key. Only
// pairs confirmed to share a basic rhyme key are asserted here -- the
// distance formula's precondition is that a.rhyme == b.rhyme. The other
// ranking pairs discussed in DESIGN.md are not asserted in this package or
// in lookup's tests.
func TestRhymeRanking(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		closer  string
		farther string
	}{
		{"кот vs терракот/болот", "ко'т", "террако'т", "боло'т"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := trans(tt.query)
			dClose := NormalizedRhymeDistance(q, trans(tt.closer))
			dFar := NormalizedRhymeDistance(q, trans(tt.farther))
			if !(dClose < dFar) {
				t.Errorf("NormalizedRhymeDistance(%q,%q)=%v, want strictly less than NormalizedRhymeDistance(%q,%q)=%v",
					tt.query, tt.closer, dClose, tt.query, tt.farther, dFar)
			}
		})
	}
}
