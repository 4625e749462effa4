// Package accent implements the normalization, validation, segmentation,
// and display utilities for accented Russian spellings: the layer between
// raw dictionary/query text and the phonetizer, which requires its input
// already lowercased, cleaned, and marked with a single canonical stress
// apostrophe.
package accent

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jus1d/rifmuj/repertoire"
)

const acuteCombining = "́"

var (
	accentMarkers = regexp.MustCompile("['_" + acuteCombining + "]")
	yoCanon       = regexp.MustCompile("ё'?")
	keepRune      = regexp.MustCompile(
		"[^" + repertoire.VowelLetters + repertoire.ConsonantLetters +
			repertoire.SignLetters + repertoire.Accents + repertoire.Separators + "]")
)

// NormalizeAccentedSpell lowercases s, trims surrounding whitespace,
// replaces every variant of stress mark with an apostrophe, rewrites ё
// (optionally already followed by a stress mark) to the canonical ё', and
// deletes characters outside the repertoire. Idempotent.
func NormalizeAccentedSpell(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = accentMarkers.ReplaceAllString(s, "'")
	s = yoCanon.ReplaceAllString(s, "ё'")
	s = keepRune.ReplaceAllString(s, "")
	return s
}

// NormalizeSpell is NormalizeAccentedSpell with every stress mark stripped
// and ё folded to е -- the form used for dictionary-independent spelling
// equality (exact-spell lookups ignore stress).
func NormalizeSpell(s string) string {
	s = NormalizeAccentedSpell(s)
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "ё", "е")
	return s
}

// PrettifyAccentMarks renders a normalized accented spelling for display:
// apostrophe becomes a combining acute accent, the forced ё' mark is
// dropped back to plain ё (ё is inherently stressed and never needs
// marking), and in single-syllable words the mark is dropped entirely.
func PrettifyAccentMarks(s string) string {
	if countVowels(s) <= 1 {
		return strings.ReplaceAll(s, "'", "")
	}
	s = strings.ReplaceAll(s, "ё'", "ё")
	return strings.ReplaceAll(s, "'", acuteCombining)
}

func countVowels(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(repertoire.VowelLetters, r) {
			n++
		}
	}
	return n
}

// IsCorrectlyAccented reports whether s contains exactly one apostrophe and
// that apostrophe immediately follows a vowel letter.
func IsCorrectlyAccented(s string) bool {
	idx := strings.IndexByte(s, '\'')
	if idx <= 0 || strings.Count(s, "'") != 1 {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:idx])
	return strings.ContainsRune(repertoire.VowelLetters, prev)
}

// spellSyllable matches a Russian spelling's syllables: a (possibly empty)
// consonant run followed by a vowel, or -- for a trailing consonant-only
// run -- the run alone with no vowel captured.
var spellSyllable = regexp.MustCompile(
	`[^` + repertoire.VowelLetters + `]*(?P<vowel>[` + repertoire.VowelLetters + `])|[^` + repertoire.VowelLetters + `]+`,
)

var spellVowelGroup = spellSyllable.SubexpIndex("vowel")

// AccentVariants returns every possible stress placement of an unaccented
// spelling: one variant per vowel position with an apostrophe placed right
// after that vowel, plus -- whenever the vowel at that position is е -- a
// second variant with that е replaced by ё' (е and ё are often written
// identically, so either could be the intended stress).
func AccentVariants(spell string) []string {
	matches := spellSyllable.FindAllStringSubmatchIndex(spell, -1)
	if len(matches) == 0 || matches[0][2*spellVowelGroup] == -1 {
		return []string{spell}
	}
	var variants []string
	for _, m := range matches {
		vStart, vEnd := m[2*spellVowelGroup], m[2*spellVowelGroup+1]
		if vStart == -1 {
			continue
		}
		variants = append(variants, spell[:vEnd]+"'"+spell[vEnd:])
		if spell[vStart:vEnd] == "е" {
			variants = append(variants, spell[:vStart]+"ё'"+spell[vEnd:])
		}
	}
	return variants
}

// transSyllable matches a transcription's syllables: a (possibly empty)
// consonant run followed by a vowel (captured separately when stressed),
// or a trailing consonant-only run.
var transSyllable = regexp.MustCompile(
	`[` + repertoire.Consonants + `]*(?:(?P<stressed>[` + repertoire.StressedVowels + `])|[` + repertoire.Vowels + `])|[` + repertoire.Consonants + `]+`,
)

var transStressedGroup = transSyllable.SubexpIndex("stressed")

// walkSyllables pairs up spell's C*V syllables with trans's syllables
// (the same count, by construction of the phonetizer) and calls f with
// each spelling syllable and, if that syllable's transcription vowel is
// stressed, the stressed phoneme letter (zero rune otherwise).
func walkSyllables(spell, trans string, f func(syll string, stressedPhoneme rune)) {
	spellMatches := spellSyllable.FindAllString(spell, -1)
	transMatches := transSyllable.FindAllStringSubmatchIndex(trans, -1)
	n := len(spellMatches)
	if len(transMatches) < n {
		n = len(transMatches)
	}
	for i := 0; i < n; i++ {
		tm := transMatches[i]
		var stressedPhoneme rune
		if start := tm[2*transStressedGroup]; start != -1 {
			end := tm[2*transStressedGroup+1]
			stressedPhoneme, _ = utf8.DecodeRuneInString(trans[start:end])
		}
		f(spellMatches[i], stressedPhoneme)
	}
}

// AccentByTranscription reconstructs an accented spelling by walking
// spell's syllables in lockstep with trans's: the syllable whose
// transcription vowel is uppercase (stressed) receives the stress mark.
// A syllable spelled bare е whose transcription vowel is O (i.e. ё written
// without its mark) is rewritten ё' instead of е'.
func AccentByTranscription(spell, trans string) string {
	var b strings.Builder
	walkSyllables(spell, trans, func(syll string, stressedPhoneme rune) {
		switch {
		case stressedPhoneme == 0:
			b.WriteString(syll)
		case stressedPhoneme == 'O' && strings.HasSuffix(syll, "е"):
			b.WriteString(syll[:len(syll)-len("е")] + "ё'")
		default:
			b.WriteString(syll + "'")
		}
	})
	return b.String()
}

// YoficateByTranscription is the same walk as AccentByTranscription, but
// never marks stress: it only ever restores ё (without a mark) where the
// spelling shows a bare е and the transcription shows the O phoneme.
func YoficateByTranscription(spell, trans string) string {
	var b strings.Builder
	walkSyllables(spell, trans, func(syll string, stressedPhoneme rune) {
		if stressedPhoneme == 'O' && strings.HasSuffix(syll, "е") {
			b.WriteString(syll[:len(syll)-len("е")] + "ё")
			return
		}
		b.WriteString(syll)
	})
	return b.String()
}
