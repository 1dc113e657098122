package grammar

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) Grammar {
	t.Helper()
	g, err := Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	return g
}

func TestTokensAreSortedUppercaseProductions(t *testing.T) {
	g := mustParse(t, `
		list   = Word { "," Word } .
		Word   = letter { letter } .
		Comma  = "," .
		letter = "a" … "z" .
	`)

	got := g.Tokens()
	want := []string{"Comma", "Word"}
	if len(got) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if !g.Has("letter") || g.Has("missing") {
		t.Errorf("Has() disagrees with the grammar")
	}
	if g.Get("list") == nil {
		t.Errorf("Get(list) = nil")
	}
	if g.Len() != 4 {
		t.Errorf("Len() = %d, want 4", g.Len())
	}
}

func TestCheckAcceptsCombinedGrammar(t *testing.T) {
	g := mustParse(t, `
		list   = Word { "," Word } .
		Word   = letter { letter } .
		Comma  = "," .
		letter = "a" … "z" .
	`)

	if err := Check(g, "list"); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestCheckReportsProblems(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		start string
		want  string
	}{
		{
			name:  "missing start",
			src:   `Word = "a" .`,
			start: "list",
			want:  "no start production list",
		},
		{
			name:  "missing production",
			src:   `list = item . Word = "a" .`,
			start: "list",
			want:  "missing production item",
		},
		{
			name:  "decreasing range",
			src:   `list = Word . Word = "z" … "a" .`,
			start: "list",
			want:  "decreasing character range",
		},
		{
			name:  "unused production",
			src:   `list = Word . Word = "a" . orphan = "b" .`,
			start: "list",
			want:  "orphan is unused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.src)
			err := Check(g, tt.start)
			if err == nil {
				t.Fatalf("Check() = nil, want error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Check() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestIsToken(t *testing.T) {
	for name, want := range map[string]bool{
		"Number": true,
		"number": false,
		"X":      true,
		"":       false,
	} {
		if got := IsToken(name); got != want {
			t.Errorf("IsToken(%q) = %v, want %v", name, got, want)
		}
	}
}
