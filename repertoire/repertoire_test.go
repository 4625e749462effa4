package repertoire

import "testing"

func TestPhonemizeVowel(t *testing.T) {
	tests := []struct {
		letter rune
		want   rune
	}{
		{'а', 'a'},
		{'о', 'o'},
		{'и', 'i'},
		{'е', 'e'},
		{'я', 'a'},
		{'ё', 'o'},
		{'ю', 'u'},
	}
	for _, tt := range tests {
		if got := PhonemizeVowel(tt.letter); got != tt.want {
			t.Errorf("PhonemizeVowel(%q) = %q, want %q", tt.letter, got, tt.want)
		}
	}
}

func TestReduction(t *testing.T) {
	tests := []struct {
		ph       rune
		wantLess rune
		wantMore rune
	}{
		{'o', 'a', 'i'},
		{'a', 'a', 'i'},
		{'e', 'i', 'i'},
		{'u', 'u', 'u'},
	}
	for _, tt := range tests {
		if got := ReductLess(tt.ph); got != tt.wantLess {
			t.Errorf("ReductLess(%q) = %q, want %q", tt.ph, got, tt.wantLess)
		}
		if got := ReductMore(tt.ph); got != tt.wantMore {
			t.Errorf("ReductMore(%q) = %q, want %q", tt.ph, got, tt.wantMore)
		}
	}
}

func TestVoiceUnvoice(t *testing.T) {
	tests := []struct {
		unvoiced rune
		voiced   rune
	}{
		{'s', 'z'},
		{'t', 'd'},
		{'p', 'b'},
		{'k', 'g'},
		{'x', 'h'},
		{'c', 'j'},
	}
	for _, tt := range tests {
		if got := Voice(tt.unvoiced); got != tt.voiced {
			t.Errorf("Voice(%q) = %q, want %q", tt.unvoiced, got, tt.voiced)
		}
		if got := Unvoice(tt.voiced); got != tt.unvoiced {
			t.Errorf("Unvoice(%q) = %q, want %q", tt.voiced, got, tt.unvoiced)
		}
	}
	// в pairs with ф: it does not trigger voicing of a preceding cluster
	// (see VoicingCons), but it is devoiced itself, e.g. word-finally.
	if got := Unvoice('v'); got != 'f' {
		t.Errorf("Unvoice('v') = %q, want 'f'", got)
	}
}

func TestPhonemizeConsonant(t *testing.T) {
	tests := []struct {
		letter rune
		soft   bool
		want   string
	}{
		{'б', false, "b"},
		{'б', true, "B"},
		{'й', true, "Y"},
		{'ц', false, "ts"},
		{'ц', true, "ts"}, // ц has no soft pair, case is ignored
		{'ч', false, "TC"},
		{'щ', true, "C"},
	}
	for _, tt := range tests {
		if got := PhonemizeConsonant(tt.letter, tt.soft); got != tt.want {
			t.Errorf("PhonemizeConsonant(%q, %v) = %q, want %q", tt.letter, tt.soft, got, tt.want)
		}
	}
}
