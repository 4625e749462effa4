package accent

import (
	"reflect"
	"testing"
)

func TestNormalizeAccentedSpell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and lowercases", "  Берё'г  ", "берё'г"},
		{"underscore stress becomes apostrophe", "бере_г", "бере'г"},
		{"bare ё gets forced stress mark", "ещё", "ещё'"},
		{"drops characters outside the repertoire", "бе-рег123!", "бе-рег"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAccentedSpell(tt.in); got != tt.want {
				t.Errorf("NormalizeAccentedSpell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpell(t *testing.T) {
	if got, want := NormalizeSpell("Берё'г"), "берег"; got != want {
		t.Errorf("NormalizeSpell() = %q, want %q", got, want)
	}
}

func TestIsCorrectlyAccented(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"бере'г", true},
		{"берег", false},
		{"бе'ре'г", false},
		{"'берег", false},
	}
	for _, tt := range tests {
		if got := IsCorrectlyAccented(tt.in); got != tt.want {
			t.Errorf("IsCorrectlyAccented(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAccentVariants(t *testing.T) {
	tests := []struct {
		spell string
		want  []string
	}{
		{"отнял", []string{"о'тнял", "отня'л"}},
		{"берег", []string{"бе'рег", "бё'рег", "бере'г", "берё'г"}},
	}
	for _, tt := range tests {
		t.Run(tt.spell, func(t *testing.T) {
			got := AccentVariants(tt.spell)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AccentVariants(%q) = %v, want %v", tt.spell, got, tt.want)
			}
		})
	}
}
