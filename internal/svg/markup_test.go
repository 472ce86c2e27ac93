package svg

import (
	"strings"
	"testing"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
  <circle cx="12" cy="12" r="10"/>
</svg>
`

func TestHasDescription(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    bool
	}{
		{"absent", sampleDoc, false},
		{"present", `<svg><desc>A circle.</desc></svg>`, true},
		{"uppercase tag", `<svg><DESC>A circle.</DESC></svg>`, true},
		{"attributes on tag", `<svg><desc id="caption">A circle.</desc></svg>`, true},
		{"unclosed element", `<svg><desc>broken`, true},
		{"similar element name", `<svg><description>not a desc</description></svg>`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasDescription(tc.content); got != tc.want {
				t.Fatalf("HasDescription(%q) = %v, want %v", tc.content, got, tc.want)
			}
		})
	}
}

func TestExtractDescription(t *testing.T) {
	content := InsertDescription(sampleDoc, "A blue circle.")
	text, ok := ExtractDescription(content)
	if !ok {
		t.Fatal("expected description to be found")
	}
	if text != "A blue circle." {
		t.Fatalf("extracted %q, want %q", text, "A blue circle.")
	}

	if _, ok := ExtractDescription(sampleDoc); ok {
		t.Fatal("expected no description in unannotated document")
	}
	if _, ok := ExtractDescription(`<svg><desc>unclosed`); ok {
		t.Fatal("expected no extraction from an unclosed element")
	}
}

func TestExtractDescriptionDoesNotUnescape(t *testing.T) {
	content := InsertDescription(sampleDoc, `Tom & Jerry <fighting>`)
	text, ok := ExtractDescription(content)
	if !ok {
		t.Fatal("expected description to be found")
	}
	want := "Tom &amp; Jerry &lt;fighting&gt;"
	if text != want {
		t.Fatalf("extracted %q, want escaped form %q", text, want)
	}
}

func TestStripDescription(t *testing.T) {
	annotated := InsertDescription(sampleDoc, "A circle.")
	if got := StripDescription(annotated); got != sampleDoc {
		t.Fatalf("strip did not restore original document:\n%q", got)
	}
	if got := StripDescription(sampleDoc); got != sampleDoc {
		t.Fatal("strip of unannotated content must be a no-op")
	}
}

func TestEscapeTextOrder(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a & b", "a &amp; b"},
		{"<tag>", "&lt;tag&gt;"},
		{"&lt;", "&amp;lt;"},
		{"x < y & y > z", "x &lt; y &amp; y &gt; z"},
		{"plain text", "plain text"},
	}
	for _, tc := range cases {
		if got := EscapeText(tc.in); got != tc.want {
			t.Fatalf("EscapeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestInsertDescriptionPlacement(t *testing.T) {
	content := InsertDescription(sampleDoc, "A blue circle.")
	wantFragment := `viewBox="0 0 24 24"><desc>A blue circle.</desc>` + "\n"
	if !strings.Contains(content, wantFragment) {
		t.Fatalf("description not inserted after root opening tag:\n%s", content)
	}
}

func TestInsertDescriptionReplaces(t *testing.T) {
	once := InsertDescription(sampleDoc, "first text")
	twice := InsertDescription(once, "second text")

	if got := strings.Count(strings.ToLower(twice), "<desc>"); got != 1 {
		t.Fatalf("expected exactly one description element, found %d:\n%s", got, twice)
	}
	text, ok := ExtractDescription(twice)
	if !ok || text != "second text" {
		t.Fatalf("extracted %q (found=%v), want %q", text, ok, "second text")
	}
	if strings.Contains(twice, "first text") {
		t.Fatal("first description text must not survive replacement")
	}
}

func TestInsertDescriptionMissingRootTag(t *testing.T) {
	cases := []string{
		"",
		"not markup at all",
		"<?xml version=\"1.0\"?>\n<!-- no root element -->",
	}
	for _, content := range cases {
		if got := InsertDescription(content, "text"); got != content {
			t.Fatalf("content without a root tag must pass through unchanged, got %q", got)
		}
	}
}

func TestInsertDescriptionRoundTripStability(t *testing.T) {
	// Annotating, stripping, and annotating again must converge on the same
	// bytes regardless of how many cycles run.
	first := InsertDescription(sampleDoc, "A circle.")
	second := InsertDescription(first, "A circle.")
	if first != second {
		t.Fatalf("repeated insertion of identical text diverged:\n%q\n%q", first, second)
	}
}
