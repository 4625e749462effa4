package record

import "testing"

func TestNewEphemeral(t *testing.T) {
	w := NewEphemeral("ко'шка", "koshka", "Aka2")

	if w.Spell != "ко'шка" {
		t.Errorf("Spell = %q, want %q", w.Spell, "ко'шка")
	}
	if w.Trans != "koshka" {
		t.Errorf("Trans = %q, want %q", w.Trans, "koshka")
	}
	if w.Rhyme != "Aka2" {
		t.Errorf("Rhyme = %q, want %q", w.Rhyme, "Aka2")
	}
	if w.Gram != "" {
		t.Errorf("Gram = %q, want empty", w.Gram)
	}
	if w.WordID != 0 || w.LemmaID != 0 {
		t.Errorf("WordID/LemmaID = %d/%d, want 0/0", w.WordID, w.LemmaID)
	}
}

func TestIsEphemeral(t *testing.T) {
	tests := []struct {
		name string
		w    Word
		want bool
	}{
		{"ephemeral", NewEphemeral("спелл", "spell", "Ell"), true},
		{"stored word", Word{WordID: 42, LemmaID: 42, Spell: "кот"}, false},
		{"stored inflected form", Word{WordID: 43, LemmaID: 42, Spell: "кота"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.IsEphemeral(); got != tt.want {
				t.Errorf("IsEphemeral() = %v, want %v", got, tt.want)
			}
		})
	}
}
