// Package repertoire defines the Russian orthographic and phonemic
// character classes shared by the phonetics and accent packages, plus the
// handful of single-character transform maps (Phonemize, ReductLess,
// ReductMore, Voice, Unvoice) that those packages apply character by
// character.
package repertoire

import "unicode"

// Separators occurring between words in a multi-word dictionary entry.
const Separators = " ,-"

// Accent marks recognized in a normalized accented spelling.
const Accents = "'`"

// Orthographic letters, partitioned per spec.md §3.
const (
	SignLetters         = "ъь"
	PlainVowelLetters   = "ыэаоу"
	JotVowelLetters     = "иеяёю"
	VowelLetters        = PlainVowelLetters + JotVowelLetters
	ConsonantLetters    = "бвгджзйклмнпрстфхцчшщ"
	SoftOnlyConsLetters = "йчщ"
	HardOnlyConsLetters = "жшц"
)

// SoftableConsLetters are consonant letters that are not hard-only, i.e.
// those that can carry a palatalization mark.
var SoftableConsLetters = removeAll(ConsonantLetters, HardOnlyConsLetters)

// Phoneme alphabets, per spec.md §3. Case encodes stress (vowels) or
// palatalization (consonants).
const (
	Vowels         = "ieaou"
	StressedVowels = "IEAOU"

	SonorantCons      = "ymnlr"
	PairedVoicedCons  = "vbdzjgh"
	PairedUnvoicedCons = "fptsckx"
)

var (
	// VoiceableCons are unvoiced obstruents (either case) that can gain voicing.
	VoiceableCons = PairedUnvoicedCons + upper(PairedUnvoicedCons)
	// UnvoiceableCons are voiced obstruents (either case) that can lose voicing.
	UnvoiceableCons = PairedVoicedCons + upper(PairedVoicedCons)
	// VoicingCons are voiced obstruents that trigger assimilation in a
	// preceding cluster -- everything in PairedVoicedCons except в/V, which
	// does not trigger voicing of what precedes it.
	VoicingCons = PairedVoicedCons[1:] + upper(PairedVoicedCons[1:])
	// UnvoicingCons are consonants that trigger unvoicing of what precedes
	// them: the unvoiced obstruents, both cases. Sonorants are not in this
	// set and leave a preceding cluster as it is; the word end also
	// triggers unvoicing, which Pass 5 checks separately.
	UnvoicingCons = PairedUnvoicedCons + upper(PairedUnvoicedCons)
	// Consonants is the full consonant phoneme alphabet, both cases.
	Consonants = SonorantCons + upper(SonorantCons) + UnvoiceableCons + VoiceableCons
)

var (
	phonemizeMap  = map[rune]rune{}
	reductLessMap = map[rune]rune{}
	reductMoreMap = map[rune]rune{}
	voiceMap      = map[rune]rune{}
	unvoiceMap    = map[rune]rune{}
)

// consonantPhoneme maps a plain (non-affricate) orthographic consonant
// letter to its base (hard, lowercase) phoneme letter. й, м, н, л, р are
// the sonorants; ф, п, т, с, ш, к, х the unvoiced obstruents; в, б, д, з,
// ж, г the voiced obstruents. The seventh voiced-obstruent phoneme, h, has
// no orthographic source letter -- it only arises when х is voiced by
// assimilation (Voice('x') == 'h').
var consonantPhoneme = map[rune]rune{
	'й': 'y', 'м': 'm', 'н': 'n', 'л': 'l', 'р': 'r',
	'ф': 'f', 'п': 'p', 'т': 't', 'с': 's', 'ш': 'c', 'к': 'k', 'х': 'x',
	'в': 'v', 'б': 'b', 'д': 'd', 'з': 'z', 'ж': 'j', 'г': 'g',
}

func init() {
	buildPairMap(phonemizeMap, PlainVowelLetters, Vowels)
	buildPairMap(phonemizeMap, JotVowelLetters, Vowels)

	buildPairMap(reductLessMap, Vowels, "iiaau")
	buildPairMap(reductMoreMap, Vowels, "iiiiu")
	buildPairMap(voiceMap, VoiceableCons, UnvoiceableCons)
	buildPairMap(unvoiceMap, UnvoiceableCons, VoiceableCons)
}

func buildPairMap(m map[rune]rune, from, to string) {
	fr := []rune(from)
	tr := []rune(to)
	n := len(fr)
	if len(tr) < n {
		n = len(tr)
	}
	for i := 0; i < n; i++ {
		m[fr[i]] = tr[i]
	}
}

// PhonemizeVowel returns the base vowel phoneme (lowercase, unstressed) for
// a single plain or jot vowel letter.
func PhonemizeVowel(letter rune) rune {
	if ph, ok := phonemizeMap[letter]; ok && ph != 0 {
		return ph
	}
	return letter
}

// ReductLess applies "low reduction" to a single unstressed vowel phoneme:
// {i,e,a,o,u} -> {i,i,a,a,u}.
func ReductLess(ph rune) rune {
	if r, ok := reductLessMap[ph]; ok {
		return r
	}
	return ph
}

// ReductMore applies "high reduction" to a single unstressed vowel phoneme:
// {i,e,a,o,u} -> {i,i,i,i,u}.
func ReductMore(ph rune) rune {
	if r, ok := reductMoreMap[ph]; ok {
		return r
	}
	return ph
}

// Voice turns a voiceable (unvoiced paired) consonant phoneme into its
// voiced counterpart, preserving palatalization case. Non-voiceable input
// passes through unchanged.
func Voice(ph rune) rune {
	if r, ok := voiceMap[ph]; ok {
		return r
	}
	return ph
}

// Unvoice turns an unvoiceable (voiced paired) consonant phoneme into its
// unvoiced counterpart, preserving palatalization case. Non-unvoiceable
// input passes through unchanged.
func Unvoice(ph rune) rune {
	if r, ok := unvoiceMap[ph]; ok {
		return r
	}
	return ph
}

// UnvoiceString applies Unvoice to every rune in s -- used by rhyme.BasicRhyme
// and rhyme distance, which operate on whole clusters rather than single
// phonemes.
func UnvoiceString(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, Unvoice(r))
	}
	return string(out)
}

// PhonemizeConsonant returns the phonemic rendering of a single orthographic
// consonant letter. ц, ч, щ have a fixed multi-character rendering
// regardless of softness -- they have no hard/soft pair in Russian; every
// other consonant letter renders as a single Latin letter, uppercased when
// soft is true. Letters outside the consonant repertoire pass through
// unchanged.
func PhonemizeConsonant(letter rune, soft bool) string {
	switch letter {
	case 'ц':
		return "ts"
	case 'ч':
		return "TC"
	case 'щ':
		return "C"
	}
	ph, ok := consonantPhoneme[letter]
	if !ok {
		return string(letter)
	}
	if soft {
		return string(unicode.ToUpper(ph))
	}
	return string(ph)
}

func upper(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

func removeAll(s, drop string) string {
	dropSet := map[rune]bool{}
	for _, r := range drop {
		dropSet[r] = true
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !dropSet[r] {
			out = append(out, r)
		}
	}
	return string(out)
}
