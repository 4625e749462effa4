package phonetics

import "testing"

func TestPhonetize(t *testing.T) {
	tests := []struct {
		name   string
		accent string
		want   string
	}{
		{
			name:   "voicing assimilation across a three-consonant cluster",
			accent: "ро'стбиф",
			want:   "rOzdBif",
		},
		{
			name:   "soft sign before о, palatalized sonorant carried through",
			accent: "почтальо'н",
			want:   "paTCtaLYOn",
		},
		{
			name:   "сч merges into the щ affricate",
			accent: "счё'т",
			want:   "COt",
		},
		{
			name:   "стн cluster drops the middle stop",
			accent: "ле'стница",
			want:   "LEsNitsa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phonetize(tt.accent); got != tt.want {
				t.Errorf("Phonetize(%q) = %q, want %q", tt.accent, got, tt.want)
			}
		})
	}
}
