package normalize

import (
	"testing"
)

func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty", in: "", out: ""},
		{name: "identity ascii", in: "filtro de aceite", out: "filtro de aceite"},
		{name: "lower case", in: "FILTRO Aceite", out: "filtro aceite"},
		{name: "accents stripped", in: "váLvula hidráulica", out: "valvula hidraulica"},
		{name: "precomposed and combining agree", in: "café café", out: "cafe cafe"},
		{name: "enye loses tilde", in: "Señal", out: "senal"},
		{name: "punctuation becomes space", in: "Repuestos: 1 filtro, 2 litros", out: "repuestos 1 filtro 2 litros"},
		{name: "hyphen splits words", in: "anti-vibración", out: "anti vibracion"},
		{name: "underscore is a word rune", in: "kit_juntas", out: "kit_juntas"},
		{name: "pipe delimiter", in: "a | b", out: "a b"},
		{name: "collapse whitespace", in: "a\t\tb\nc   d", out: "a b c d"},
		{name: "trim edges", in: "  ¡cambio!  ", out: "cambio"},
		{name: "only punctuation", in: "...,;:!", out: ""},
		{name: "whitespace only", in: " \t\n ", out: ""},
		{name: "controls dropped", in: "fil\x00tro\x7f", out: "filtro"},
		{name: "invalid utf8 dropped", in: string([]byte{0xff, 'o', 'k', 0x80}), out: "ok"},
		{name: "zero width removed", in: "bom\u200bba", out: "bomba"},
		{name: "digits kept", in: "Correa 6PK1195", out: "correa 6pk1195"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			if again := n.Normalize(got); again != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalize_AccentInsensitive(t *testing.T) {
	if Text("váLvula") != Text("valvula") {
		t.Fatalf("accented and plain forms differ: %q vs %q", Text("váLvula"), Text("valvula"))
	}
}

func TestNormalize_IdempotentOverMixedInputs(t *testing.T) {
	inputs := []string{
		"Trabajo realizado: Service general completo",
		"ÀÉÎÕÜ ñandú ç",
		"İstanbul ǅemal",
		"xͅy",
		"ＦＵＬＬ width",
		"Repuestos: 1 filtro de aceite, 2 litros aceite hidraulico | Trabajo realizado: Service",
		"__init__ -- 3.5mm ½",
	}
	for _, in := range inputs {
		once := Text(in)
		if twice := Text(once); twice != once {
			t.Fatalf("Text(%q): %q then %q", in, once, twice)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	in := " \t a \n b   c \r\n "
	want := "a b c"
	if got := collapseSpaces(in); got != want {
		t.Fatalf("collapseSpaces(%q) = %q, want %q", in, got, want)
	}
}

func TestSanitize_FastPathReturnsInput(t *testing.T) {
	in := "línea\tuno\nlínea dos"
	if got := Sanitize(in); got != in {
		t.Fatalf("Sanitize(%q) = %q", in, got)
	}
}

func TestText_SeparatorsAndConnectors(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a\x1cb", "a b"},
		{"bomba\x1dde\x1eagua\x1fnueva", "bomba de agua nueva"},
		{"filtro\x00aceite", "filtroaceite"},
		{"filtro\u203faceite", "filtro aceite"},
		{"snake_case", "snake_case"},
	}
	for _, tc := range cases {
		if got := Text(tc.in); got != tc.want {
			t.Fatalf("Text(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
