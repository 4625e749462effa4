// Package phonetics implements the grapheme-to-phoneme transducer: it turns
// a normalized accented Russian spelling into its canonical phonemic
// transcription.
//
// The transformation is specified as an ordered pipeline of rewrite passes
// (genitive-ending rewrite, softness-and-stress, consonant clusters,
// separator removal, voicing assimilation, degemination); each pass's
// output feeds the next, and the pipeline is total -- any well-formed
// normalized input yields a transcription.
//
// Per the design note on rule-table explosion, the softness-and-stress pass
// is implemented as a direct scan driven by (consonant-class, vowel-class,
// sign-presence) structure rather than a materialized case-enumerated hash
// map: it produces the same transcriptions with far less precomputed data.
package phonetics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jus1d/rifmuj/repertoire"
)

// Phonetize returns the phonetic transcription of a normalized accented
// spelling. See the concrete scenarios in the package tests for examples.
func Phonetize(accentedSpell string) string {
	s := pass1GenitiveEnding(accentedSpell)
	s = pass2SoftnessAndStress(s)
	s = pass3ConsonantClusters(s)
	s = pass4DropSeparators(s)
	s = pass5VoicingAssimilation(s)
	s = pass6Degeminate(s)
	return s
}

// ── Pass 1: genitive singular adjective ending ──────────────────────────

var genitiveEnding = regexp.MustCompile(`[ое]'?го'?(?:ся)?`)

// pass1GenitiveEnding rewrites г -> в in the genitive/accusative adjective
// ending -ого/-его (optionally reflexive), wherever that ending is
// word-final or followed by a separator.
func pass1GenitiveEnding(s string) string {
	matches := genitiveEnding.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if !atWordBoundary(s, end) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(strings.NewReplacer("г", "в", "Г", "В").Replace(s[start:end]))
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

func atWordBoundary(s string, byteOffset int) bool {
	if byteOffset >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[byteOffset:])
	return strings.ContainsRune(repertoire.Separators, r)
}

// ── Pass 2: softness and stress ──────────────────────────────────────────

// vowelStress classifies how strongly a vowel is stressed, per the accent
// mark (or lack of one) and whether the vowel sits at a word boundary.
type vowelStress int

const (
	stressed vowelStress = iota
	semistressed
	unstressedFinal
	unstressed
)

// vowelPosition classifies the phonetic environment of a vowel.
type vowelPosition int

const (
	afterHard vowelPosition = iota
	afterSoft
	isolated
)

func pass2SoftnessAndStress(s string) string {
	r := []rune(s)
	n := len(r)
	var out strings.Builder
	i := 0
	for i < n {
		c := r[i]
		switch {
		case isSeparator(c):
			out.WriteRune(c)
			i++
		case isSign(c):
			// a sign not preceded by a consumed consonant is ill-formed input.
			i++
		case isVowel(c):
			st, j := consumeStressTail(r, i+1)
			if isJotVowel(c) {
				out.WriteRune('Y')
				out.WriteRune(phonetizeVowel(afterSoft, st, c))
			} else {
				out.WriteRune(phonetizeVowel(isolated, st, c))
			}
			i = j
		case isConsonant(c):
			i = consumeConsonant(r, i, &out)
		default:
			i++
		}
	}
	return out.String()
}

// consumeConsonant handles one consonant and whatever follows it (ьо,
// sign, vowel, or nothing), per the match-shape table in spec.md §4.C,
// and returns the index just past what it consumed.
func consumeConsonant(r []rune, i int, out *strings.Builder) int {
	c := r[i]
	n := len(r)

	// C + ьо (special case: a soft sign immediately followed by о).
	if i+2 < n && r[i+1] == 'ь' && r[i+2] == 'о' {
		st, j := consumeStressTail(r, i+3)
		if isHardOnly(c) {
			out.WriteString(phonemizeConsonant(c, false))
		} else {
			out.WriteString(phonemizeConsonant(c, true))
		}
		out.WriteRune('Y')
		out.WriteRune(phonetizeVowel(afterSoft, st, 'о'))
		return j
	}

	if i+1 < n && isSign(r[i+1]) {
		sign := r[i+1]
		switch {
		case isSoftOnly(c):
			out.WriteString(phonemizeConsonant(c, true))
		case isHardOnly(c):
			out.WriteString(phonemizeConsonant(c, false))
		case sign == 'ь':
			out.WriteString(phonemizeConsonant(c, true))
		default: // ъ
			out.WriteString(phonemizeConsonant(c, false))
		}
		return i + 2
	}

	if i+1 < n && isVowel(r[i+1]) {
		v := r[i+1]
		st, j := consumeStressTail(r, i+2)
		switch {
		case isSoftOnly(c):
			out.WriteString(phonemizeConsonant(c, true))
			out.WriteRune(phonetizeVowel(afterSoft, st, v))
		case isJotVowel(v) && !isHardOnly(c):
			out.WriteString(phonemizeConsonant(c, true))
			out.WriteRune(phonetizeVowel(afterSoft, st, v))
		default:
			out.WriteString(phonemizeConsonant(c, false))
			out.WriteRune(phonetizeVowel(afterHard, st, v))
		}
		return j
	}

	// bare consonant: nothing follows it but another consonant, a
	// separator, or the end of the word.
	out.WriteString(phonemizeConsonant(c, isSoftOnly(c)))
	return i + 1
}

func consumeStressTail(r []rune, idx int) (vowelStress, int) {
	if idx < len(r) {
		switch r[idx] {
		case '\'':
			return stressed, idx + 1
		case '`':
			return semistressed, idx + 1
		}
	}
	if idx >= len(r) || isSeparator(r[idx]) {
		return unstressedFinal, idx
	}
	return unstressed, idx
}

func phonetizeVowel(pos vowelPosition, stress vowelStress, letter rune) rune {
	ph := repertoire.PhonemizeVowel(letter)
	switch stress {
	case stressed:
		return unicode.ToUpper(ph)
	case semistressed:
		return ph
	case unstressedFinal:
		if pos == isolated {
			return ph
		}
		return repertoire.ReductLess(ph)
	default: // unstressed
		if pos == afterSoft {
			return repertoire.ReductMore(ph)
		}
		return repertoire.ReductLess(ph)
	}
}

// phonemizeConsonant returns the phonemic rendering of a single consonant
// letter. ц, ч, щ have a fixed multi-character rendering regardless of
// softness (they have no hard/soft pair in Russian); other consonants are
// a single Latin letter, uppercased when soft is true.
func phonemizeConsonant(c rune, soft bool) string {
	return repertoire.PhonemizeConsonant(c, soft)
}

// ── Pass 3: consonant clusters (complex phonemes & cluster simplification) ──

var (
	reflexiveEnding = regexp.MustCompile(`[tT]Sa`)
	hissingMerge    = strings.NewReplacer("sTC", "C", "STC", "C", "cTC", "C", "CTC", "C", "zTC", "C", "ZTC", "C", "jTC", "C", "JTC", "C")
	clusterSimplify = regexp.MustCompile(`[sSzZ][tTdD][nN]`)
)

func pass3ConsonantClusters(s string) string {
	s = hissingMerge.Replace(s)
	s = clusterSimplify.ReplaceAllStringFunc(s, func(m string) string {
		r := []rune(m)
		return string(r[0]) + string(r[2])
	})
	s = replaceAtWordEnd(s, reflexiveEnding, "tsa")
	return s
}

// replaceAtWordEnd replaces every non-overlapping match of re that is
// word-final or separator-terminated with replacement.
func replaceAtWordEnd(s string, re *regexp.Regexp, replacement string) string {
	matches := re.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if !atWordBoundary(s, end) {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString(replacement)
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}

// ── Pass 4: drop separators ───────────────────────────────────────────────

var separatorRun = regexp.MustCompile(`[ ,-]+`)

func pass4DropSeparators(s string) string {
	return separatorRun.ReplaceAllString(s, "")
}

// ── Pass 5: voicing assimilation ─────────────────────────────────────────

func pass5VoicingAssimilation(s string) string {
	r := []rune(s)
	n := len(r)
	out := make([]rune, 0, n)
	i := 0
	for i < n {
		if length, voice := matchAssimilationRun(r, i); length > 0 {
			for k := 0; k < length; k++ {
				if voice {
					out = append(out, repertoire.Voice(r[i+k]))
				} else {
					out = append(out, repertoire.Unvoice(r[i+k]))
				}
			}
			i += length
			continue
		}
		out = append(out, r[i])
		i++
	}
	return string(out)
}

// matchAssimilationRun looks for the longest (2, then 1) run of
// same-class obstruents at r[i:] that is followed by a triggering
// consonant (or, for unvoiced runs, the end of the word), and reports
// whether the run should be voiced (true) or unvoiced (false).
func matchAssimilationRun(r []rune, i int) (length int, voice bool) {
	n := len(r)
	for l := 2; l >= 1; l-- {
		if i+l > n {
			continue
		}
		run := r[i : i+l]
		if allIn(run, repertoire.VoiceableCons) && i+l < n && strings.ContainsRune(repertoire.VoicingCons, r[i+l]) {
			return l, true
		}
		if allIn(run, repertoire.UnvoiceableCons) {
			atEnd := i+l == n
			nextUnvoicing := i+l < n && strings.ContainsRune(repertoire.UnvoicingCons, r[i+l])
			if atEnd || nextUnvoicing {
				return l, false
			}
		}
	}
	return 0, false
}

func allIn(run []rune, set string) bool {
	for _, c := range run {
		if !strings.ContainsRune(set, c) {
			return false
		}
	}
	return true
}

// ── Pass 6: degeminate ────────────────────────────────────────────────────

func pass6Degeminate(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	out := make([]rune, 0, len(r))
	out = append(out, r[0])
	for i := 1; i < len(r); i++ {
		prev := out[len(out)-1]
		cur := r[i]
		if unicode.ToLower(prev) == unicode.ToLower(cur) && isConsonantPhoneme(prev) && isConsonantPhoneme(cur) {
			if unicode.IsUpper(cur) {
				out[len(out)-1] = cur
			}
			continue
		}
		out = append(out, cur)
	}
	return string(out)
}

func isConsonantPhoneme(r rune) bool {
	return strings.ContainsRune(repertoire.Consonants, r) || r == 'C'
}

// ── character classification helpers (operate on orthographic letters) ────

func isSeparator(r rune) bool { return strings.ContainsRune(repertoire.Separators, r) }
func isSign(r rune) bool      { return strings.ContainsRune(repertoire.SignLetters, r) }
func isVowel(r rune) bool     { return strings.ContainsRune(repertoire.VowelLetters, r) }
func isJotVowel(r rune) bool  { return strings.ContainsRune(repertoire.JotVowelLetters, r) }
func isConsonant(r rune) bool {
	return strings.ContainsRune(repertoire.ConsonantLetters, r)
}
func isSoftOnly(r rune) bool { return strings.ContainsRune(repertoire.SoftOnlyConsLetters, r) }
func isHardOnly(r rune) bool { return strings.ContainsRune(repertoire.HardOnlyConsLetters, r) }
