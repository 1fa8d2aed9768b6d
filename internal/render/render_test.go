package render

import (
	"strings"
	"testing"
)

func TestInlineHTML_Emphasis(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "just text", "just text"},
		{"emphasis", "some *emphasized* text", "some <em>emphasized</em> text"},
		{"strong", "a **bold** claim", "a <strong>bold</strong> claim"},
		{"code", "call `Fetch` here", "call <code>Fetch</code> here"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InlineHTML(tc.in); got != tc.want {
				t.Errorf("InlineHTML(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestInlineHTML_EscapesRawHTML(t *testing.T) {
	got := InlineHTML("1 < 2 & <script>bad()</script>")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %q", got)
	}
}

func TestPlainText_StripsMarkup(t *testing.T) {
	got := PlainText("a **bold** and *subtle* `call`")
	want := "a bold and subtle call"
	if got != want {
		t.Errorf("PlainText = %q, want %q", got, want)
	}
}

func TestPlainText_PlainStaysPlain(t *testing.T) {
	in := "nothing special here"
	if got := PlainText(in); got != in {
		t.Errorf("PlainText(%q) = %q", in, got)
	}
}
