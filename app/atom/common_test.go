package atom

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lysyi3m/pub-atom/app/xmltree"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func assertValidationError(t *testing.T, err error, entity string, fields ...string) {
	t.Helper()

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got: %v", err)
	}
	if validationErr.Entity != entity {
		t.Errorf("Expected entity %q, got %q", entity, validationErr.Entity)
	}
	if diff := cmp.Diff(fields, validationErr.Fields()); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPerson(t *testing.T) {
	got, err := NewPerson(PersonOptions{Name: "Jane", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want := Person{Name: "Jane", Email: "jane@example.com"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Person mismatch (-want +got):\n%s", diff)
	}

	_, err = NewPerson(PersonOptions{URI: "https://example.com"})
	assertValidationError(t, err, "person", "name")
}

func TestNewContent(t *testing.T) {
	tests := []struct {
		name string
		opts ContentOptions
		want Content
	}{
		{"inline data defaults to text", ContentOptions{Data: "hello"}, Content{Type: "text", Data: "hello"}},
		{"typed inline data", ContentOptions{Type: "html", Data: "<p>hi</p>"}, Content{Type: "html", Data: "<p>hi</p>"}},
		{"src only", ContentOptions{Src: "http://x/y"}, Content{Type: "text", Src: "http://x/y"}},
		{"src wins over data", ContentOptions{Type: "image/png", Src: "http://x/y.png", Data: "ignored"}, Content{Type: "image/png", Src: "http://x/y.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewContent(tt.opts)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Content mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewContentRequiresDataOrSrc(t *testing.T) {
	_, err := NewContent(ContentOptions{Type: "html"})
	assertValidationError(t, err, "content", "data")
}

func TestNewText(t *testing.T) {
	got, err := NewText(*PlainText("Copyright 2024"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if diff := cmp.Diff(Text{Type: "text", Data: "Copyright 2024"}, got); diff != "" {
		t.Errorf("Text mismatch (-want +got):\n%s", diff)
	}

	got, err = NewText(TextOptions{Type: "html", Data: "<b>bold</b>"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got.Type != "html" {
		t.Errorf("Expected type html, got %q", got.Type)
	}

	_, err = NewText(TextOptions{Type: "html"})
	assertValidationError(t, err, "text", "data")
}

func TestNewLink(t *testing.T) {
	opts := LinkOptions{
		Href:     "https://example.com/feed.xml",
		Rel:      "self",
		Type:     "application/atom+xml",
		Hreflang: "en",
		Title:    "Feed",
		Length:   int64Ptr(1024),
	}
	got, err := NewLink(opts)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got.Href != opts.Href || got.Rel != "self" || got.Length == nil || *got.Length != 1024 {
		t.Errorf("Unexpected link: %+v", got)
	}

	*opts.Length = 1
	if *got.Length != 1024 {
		t.Error("Link should not share its length with the options")
	}
}

func TestNewLinkValidation(t *testing.T) {
	_, err := NewLink(LinkOptions{Rel: "alternate"})
	assertValidationError(t, err, "link", "href")

	_, err = NewLink(LinkOptions{Href: "https://example.com", Length: int64Ptr(-1)})
	assertValidationError(t, err, "link", "length")

	_, err = NewLink(LinkOptions{Length: int64Ptr(-1)})
	assertValidationError(t, err, "link", "href", "length")

	if _, err := NewLink(LinkOptions{Href: "https://example.com", Length: int64Ptr(0)}); err != nil {
		t.Errorf("Zero length should be accepted, got: %v", err)
	}
}

func TestNewLinkZeroLengthOmitted(t *testing.T) {
	got, err := NewLink(LinkOptions{Href: "https://example.com/a.mp3", Rel: "enclosure", Length: int64Ptr(0)})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got.Length != nil {
		t.Errorf("Zero length should be dropped, got %d", *got.Length)
	}

	out, err := xmltree.Render(got.element())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "length=") {
		t.Errorf("Zero length should not be rendered, got:\n%s", out)
	}
}

func TestNewGenerator(t *testing.T) {
	got, err := NewGenerator(GeneratorOptions{Name: "gen", Version: "1.2.3"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if diff := cmp.Diff(Generator{Name: "gen", Version: "1.2.3"}, got); diff != "" {
		t.Errorf("Generator mismatch (-want +got):\n%s", diff)
	}

	_, err = NewGenerator(GeneratorOptions{Version: "1.2.3"})
	assertValidationError(t, err, "generator", "name")
}
