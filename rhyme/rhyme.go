// Package rhyme parses a phonetic transcription into the parts relevant to
// rhyme comparison, derives the coarse "basic rhyme key" used to bucket
// candidates, and computes a finer normalized distance between two
// transcriptions that already share a basic rhyme key.
package rhyme

import (
	"regexp"
	"strconv"

	"github.com/jus1d/rifmuj/repertoire"
)

// Syllable is a consonant cluster (possibly empty) followed by a single
// vowel phoneme.
type Syllable struct {
	Consonants string
	Vowel      string
}

// Rhyme is a transcription parsed into the parts relevant to rhyme
// comparison: the pretonic syllables, the stressed syllable itself, the
// posttonic syllables, and the trailing bare consonant cluster.
type Rhyme struct {
	PretonicSyllables  []Syllable
	StressedSyllable   Syllable
	PosttonicSyllables []Syllable
	FinalConsonants    string
}

var splitByStress = regexp.MustCompile(
	`^(?P<pre>.*?)(?P<stress>[` + repertoire.Consonants + `]*[` + repertoire.StressedVowels + `])(?P<post>.*?)(?P<final>[` + repertoire.Consonants + `]*)$`,
)

var splitSyllable = regexp.MustCompile(
	`(?P<cons>[` + repertoire.Consonants + `]*)(?P<vowel>[` + repertoire.Vowels + `])`,
)

var stressSyllablePattern = regexp.MustCompile(
	`^(?P<cons>[` + repertoire.Consonants + `]*)(?P<vowel>[` + repertoire.StressedVowels + `])$`,
)

// Parse matches trans against the anchored pre/stress/post/final pattern
// and segments pre/post into syllables. It reports false if trans contains
// no stressed vowel ("no rhyme").
func Parse(trans string) (*Rhyme, bool) {
	idx := splitByStress.FindStringSubmatchIndex(trans)
	if idx == nil {
		return nil, false
	}
	pre := namedGroup(trans, idx, splitByStress, "pre")
	stress := namedGroup(trans, idx, splitByStress, "stress")
	post := namedGroup(trans, idx, splitByStress, "post")
	final := namedGroup(trans, idx, splitByStress, "final")

	return &Rhyme{
		PretonicSyllables:  parseSyllables(pre),
		StressedSyllable:   parseStressedSyllable(stress),
		PosttonicSyllables: parseSyllables(post),
		FinalConsonants:    final,
	}, true
}

func namedGroup(s string, idx []int, re *regexp.Regexp, name string) string {
	gi := re.SubexpIndex(name)
	start, end := idx[2*gi], idx[2*gi+1]
	if start == -1 {
		return ""
	}
	return s[start:end]
}

func parseSyllables(s string) []Syllable {
	matches := splitSyllable.FindAllStringSubmatchIndex(s, -1)
	syllables := make([]Syllable, 0, len(matches))
	for _, m := range matches {
		syllables = append(syllables, Syllable{
			Consonants: namedGroup(s, m, splitSyllable, "cons"),
			Vowel:      namedGroup(s, m, splitSyllable, "vowel"),
		})
	}
	return syllables
}

func parseStressedSyllable(s string) Syllable {
	m := stressSyllablePattern.FindStringSubmatchIndex(s)
	if m == nil {
		return Syllable{}
	}
	return Syllable{
		Consonants: namedGroup(s, m, stressSyllablePattern, "cons"),
		Vowel:      namedGroup(s, m, stressSyllablePattern, "vowel"),
	}
}

// BasicRhyme returns the coarse rhyme-class key for a transcription, or ""
// if the transcription has no stressed vowel.
func BasicRhyme(trans string) string {
	r, ok := Parse(trans)
	if !ok {
		return ""
	}

	stressedVowel := r.StressedSyllable.Vowel

	if n := len(r.PosttonicSyllables); n > 0 {
		cluster := []rune(r.PosttonicSyllables[0].Consonants)
		lastCons := ""
		if len(cluster) > 0 {
			lastCons = repertoire.UnvoiceString(string(cluster[len(cluster)-1]))
		}
		otherCons := ""
		if len(cluster) > 1 {
			otherCons = "_"
		}
		return stressedVowel + otherCons + lastCons + strconv.Itoa(n)
	}

	if r.FinalConsonants != "" {
		return stressedVowel + r.FinalConsonants
	}

	onset := []rune(r.StressedSyllable.Consonants)
	lastOnsetCons := ""
	if len(onset) > 0 {
		lastOnsetCons = string(onset[len(onset)-1])
	}
	return lastOnsetCons + stressedVowel
}
