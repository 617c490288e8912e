package normalize

import "testing"

func TestWholeWord(t *testing.T) {
	tests := []struct {
		text, kw string
		want     bool
	}{
		{"cambio de filtro", "filtro", true},
		{"filtro", "filtro", true},
		{"filtros nuevos", "filtro", false},
		{"prefiltro", "filtro", false},
		{"prefiltro y filtro", "filtro", true},
		{"filtro_aire", "filtro", false},
		{"aceite hidraulico", "aceite hidraulico", true},
		{"aceite hidraulicos", "aceite hidraulico", false},
		{"bomba 2", "2", true},
		{"b2b", "2", false},
		{"senal", "senal", true},
		{"", "filtro", false},
		{"filtro", "", false},
	}
	for _, tc := range tests {
		if got := WholeWord(tc.text, tc.kw); got != tc.want {
			t.Fatalf("WholeWord(%q, %q) = %v, want %v", tc.text, tc.kw, got, tc.want)
		}
	}
}

func TestWholeWord_NonASCIIBoundaries(t *testing.T) {
	// ñ is a letter, so the match inside "añejo" is not a whole word
	if WholeWord("añejo", "ejo") {
		t.Fatal("expected letter ñ to block the boundary")
	}
	if !WholeWord("ñ ejo", "ejo") {
		t.Fatal("expected space to open the boundary")
	}
}

func TestIsWordRune(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '9', '_', 'ñ', 'ж', '٣'} {
		if !IsWordRune(r) {
			t.Fatalf("IsWordRune(%q) = false", r)
		}
	}
	for _, r := range []rune{' ', '-', '|', ':', '.', '¡', '\u203f', '\u2040', '\ufe4f'} {
		if IsWordRune(r) {
			t.Fatalf("IsWordRune(%q) = true", r)
		}
	}
}
