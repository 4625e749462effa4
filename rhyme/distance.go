package rhyme

import (
	"math"

	"github.com/jus1d/rifmuj/repertoire"
)

// Distance is a running (numerator, denominator) accumulator for a
// weighted distance computation: every sub-distance contributes its own
// weight to the denominator, so partial comparisons (a shorter cluster, a
// missing pretonic syllable) combine correctly with full ones. The final
// score is Normalized().
type Distance struct {
	Numerator   float64
	Denominator float64
}

func fixedDistance(actual float64) Distance { return Distance{Numerator: actual, Denominator: 1} }

// Add combines two independently weighted distances.
func (d Distance) Add(o Distance) Distance {
	return Distance{d.Numerator + o.Numerator, d.Denominator + o.Denominator}
}

// Scale multiplies both numerator and denominator by factor, applying a
// weight to this distance without changing its normalized value on its own.
func (d Distance) Scale(factor float64) Distance {
	return Distance{d.Numerator * factor, d.Denominator * factor}
}

// Normalized returns the distance as a value in [0, 1].
func (d Distance) Normalized() float64 {
	if d.Denominator == 0 {
		return 0
	}
	return d.Numerator / d.Denominator
}

const (
	wrongVoicenessDistance = 0.5
	vowelToConsWeight      = 1.5
	pretonicExpBase        = 0.7
	pretonicWeight         = 0.2
	stressedSylConsWeight  = 0.8
	posttonicWeight        = 1.2
	finalConsWeight        = 1.0
)

// phonDistance compares two single phonemes. When allowWrongVoiceness is
// set, a pair that differs only in voicing (paired obstruents on either
// side of the voiced/unvoiced split) counts as a partial match rather than
// a full mismatch -- rhymes tolerate a devoiced/voiced onset far better
// than an unrelated consonant.
func phonDistance(ph1, ph2 string, allowWrongVoiceness bool) Distance {
	if ph1 == ph2 {
		return fixedDistance(0)
	}
	if allowWrongVoiceness && repertoire.UnvoiceString(ph1) == repertoire.UnvoiceString(ph2) {
		return fixedDistance(wrongVoicenessDistance)
	}
	return fixedDistance(1)
}

// clusterDistance compares two consonant clusters phoneme by phoneme.
// Clusters of different lengths are a full mismatch: a missing or extra
// consonant changes the cluster's shape more than any substitution would.
func clusterDistance(cl1, cl2 string, allowWrongVoiceness bool) Distance {
	r1, r2 := []rune(cl1), []rune(cl2)
	if len(r1) != len(r2) {
		return fixedDistance(1)
	}
	if len(r1) == 0 {
		return fixedDistance(0)
	}
	total := Distance{}
	for i := range r1 {
		total = total.Add(phonDistance(string(r1[i]), string(r2[i]), allowWrongVoiceness))
	}
	return total.Scale(1 / float64(len(r1)))
}

// syllableDistance compares a syllable's onset cluster and vowel. The
// vowel never tolerates a voicing mismatch -- vowels have no voicing
// contrast to begin with.
func syllableDistance(s1, s2 Syllable, allowWrongVoiceness bool) Distance {
	return clusterDistance(s1.Consonants, s2.Consonants, allowWrongVoiceness).
		Add(phonDistance(s1.Vowel, s2.Vowel, false).Scale(vowelToConsWeight))
}

func reverseSyllables(s []Syllable) []Syllable {
	out := make([]Syllable, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// NormalizedRhymeDistance scores how well two transcriptions rhyme, lower
// being closer. Transcriptions with no stressed vowel compare as a full
// mismatch. The comparison is asymmetric: trans1's pretonic syllables
// beyond trans2's length are penalized as extras, but trans2's extra
// pretonic syllables are ignored. Callers must pass the query as trans1 --
// this is not a bug to "fix" to symmetric, it encodes query-vs-candidate
// intent when ranking candidates against a fixed query.
func NormalizedRhymeDistance(trans1, trans2 string) float64 {
	r1, ok1 := Parse(trans1)
	r2, ok2 := Parse(trans2)
	if !ok1 || !ok2 {
		return 1.0
	}

	pretonicDist := Distance{}
	p1 := reverseSyllables(r1.PretonicSyllables)
	p2 := reverseSyllables(r2.PretonicSyllables)
	for i, s1 := range p1 {
		var d Distance
		if i < len(p2) {
			d = syllableDistance(s1, p2[i], true)
		} else {
			d = fixedDistance(1.0)
		}
		pretonicDist = pretonicDist.Add(d.Scale(math.Pow(pretonicExpBase, float64(i))))
	}

	stressedConsDist := clusterDistance(r1.StressedSyllable.Consonants, r2.StressedSyllable.Consonants, true)

	posttonicDist := Distance{}
	n := len(r1.PosttonicSyllables)
	if len(r2.PosttonicSyllables) < n {
		n = len(r2.PosttonicSyllables)
	}
	for i := 0; i < n; i++ {
		posttonicDist = posttonicDist.Add(syllableDistance(r1.PosttonicSyllables[i], r2.PosttonicSyllables[i], false))
	}

	finalDist := clusterDistance(r1.FinalConsonants, r2.FinalConsonants, false)

	total := pretonicDist.Scale(pretonicWeight).
		Add(stressedConsDist.Scale(stressedSylConsWeight)).
		Add(posttonicDist.Scale(posttonicWeight)).
		Add(finalDist.Scale(finalConsWeight))

	return total.Normalized()
}
