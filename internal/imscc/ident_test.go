package imscc

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestNewIdentifierStartsWithLetter(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := newIdentifier()
		if id == "" || id[0] < 'a' || id[0] > 'z' {
			t.Fatalf("identifier %q does not start with a lowercase letter", id)
		}
		if seen[id] {
			t.Fatalf("identifier %q generated twice", id)
		}
		seen[id] = true
	}
}

func TestEscapeXMLRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`Tom & Jerry <b>"quoted"</b> it's`,
		"<p>Hi & welcome</p>",
		"&amp; already escaped",
	}
	for _, in := range inputs {
		doc := "<root>" + escapeXML(in) + "</root>"
		var out struct {
			Text string `xml:",chardata"`
		}
		if err := xml.Unmarshal([]byte(doc), &out); err != nil {
			t.Fatalf("escaped output for %q is not well-formed: %v", in, err)
		}
		if out.Text != in {
			t.Errorf("round trip of %q: got %q", in, out.Text)
		}
	}
}

func TestEscapeXMLAttribute(t *testing.T) {
	in := `say "hi" & <bye>`
	doc := `<root attr="` + escapeXML(in) + `"/>`
	var out struct {
		Attr string `xml:"attr,attr"`
	}
	if err := xml.Unmarshal([]byte(doc), &out); err != nil {
		t.Fatalf("attribute escaping broke the document: %v", err)
	}
	if out.Attr != in {
		t.Errorf("attribute round trip: got %q want %q", out.Attr, in)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Intro", "intro"},
		{"Week 1: Getting Started", "week-1-getting-started"},
		{"  --Already--Hyphenated--  ", "already-hyphenated"},
		{"CAPS and 123", "caps-and-123"},
		{"!!!", ""},
		{"", ""},
		{"über course", "ber-course"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if strings.Contains(slugify("a   b"), "--") {
		t.Error("runs of separators must collapse to a single hyphen")
	}
}
