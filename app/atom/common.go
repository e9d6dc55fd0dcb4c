package atom

import (
	"cmp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lysyi3m/pub-atom/app/xmltree"
)

const defaultTextType = "text"

type PersonOptions struct {
	Name  string `yaml:"name" json:"name"`
	URI   string `yaml:"uri" json:"uri"`
	Email string `yaml:"email" json:"email"`
}

// Person is an author. Empty URI and Email are omitted from output.
type Person struct {
	Name  string
	URI   string
	Email string
}

func NewPerson(o PersonOptions) (Person, error) {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required.Error("a person must have a name")),
	)
	if err != nil {
		return Person{}, newValidationError("person", err)
	}
	return Person{Name: o.Name, URI: o.URI, Email: o.Email}, nil
}

func (p Person) element(name string) *xmltree.Node {
	n := xmltree.New(name)
	n.Element("name", p.Name)
	n.ElementIf("uri", p.URI)
	n.ElementIf("email", p.Email)
	return n
}

type ContentOptions struct {
	Type string `yaml:"type" json:"type"`
	Src  string `yaml:"src" json:"src"`
	Data string `yaml:"data" json:"data"`
}

// Content holds either out-of-line content (Src) or inline Data, never both.
type Content struct {
	Type string
	Src  string
	Data string
}

func NewContent(o ContentOptions) (Content, error) {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Data, validation.When(o.Src == "",
			validation.Required.Error("either data or src must be specified for content"))),
	)
	if err != nil {
		return Content{}, newValidationError("content", err)
	}

	c := Content{Type: cmp.Or(o.Type, defaultTextType)}
	if o.Src != "" {
		c.Src = o.Src
	} else {
		c.Data = o.Data
	}
	return c, nil
}

func (c Content) element() *xmltree.Node {
	return xmltree.New("content").
		Attr("type", c.Type).
		AttrIf("src", c.Src).
		SetText(c.Data)
}

// TextOptions decodes from YAML either as a bare string or as {type, data}.
type TextOptions struct {
	Type string `yaml:"type" json:"type"`
	Data string `yaml:"data" json:"data"`
}

// PlainText is the bare string form of TextOptions.
func PlainText(s string) *TextOptions {
	return &TextOptions{Type: defaultTextType, Data: s}
}

type Text struct {
	Type string
	Data string
}

func NewText(o TextOptions) (Text, error) {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Data, validation.Required.Error("must specify text data")),
	)
	if err != nil {
		return Text{}, newValidationError("text", err)
	}
	return Text{Type: cmp.Or(o.Type, defaultTextType), Data: o.Data}, nil
}

func (t Text) element(name string) *xmltree.Node {
	return xmltree.New(name).Attr("type", t.Type).SetText(t.Data)
}

type LinkOptions struct {
	Href     string `yaml:"href" json:"href"`
	Rel      string `yaml:"rel" json:"rel"`
	Type     string `yaml:"type" json:"type"`
	Hreflang string `yaml:"hreflang" json:"hreflang"`
	Title    string `yaml:"title" json:"title"`
	Length   *int64 `yaml:"length" json:"length"`
}

type Link struct {
	Href     string
	Rel      string
	Type     string
	Hreflang string
	Title    string
	Length   *int64
}

func NewLink(o LinkOptions) (Link, error) {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Href, validation.Required.Error("a link must have a href")),
		validation.Field(&o.Length, validation.Min(int64(0)).Error("a link's length must not be negative")),
	)
	if err != nil {
		return Link{}, newValidationError("link", err)
	}

	l := Link{Href: o.Href, Rel: o.Rel, Type: o.Type, Hreflang: o.Hreflang, Title: o.Title}
	// A zero length means unknown and is omitted.
	if o.Length != nil && *o.Length > 0 {
		length := *o.Length
		l.Length = &length
	}
	return l, nil
}

func (l Link) element() *xmltree.Node {
	n := xmltree.New("link").
		Attr("href", l.Href).
		AttrIf("rel", l.Rel).
		AttrIf("type", l.Type).
		AttrIf("hreflang", l.Hreflang).
		AttrIf("title", l.Title)
	if l.Length != nil {
		n.Attr("length", strconv.FormatInt(*l.Length, 10))
	}
	return n
}

type GeneratorOptions struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	URI     string `yaml:"uri" json:"uri"`
}

// Generator identifies the software that produced a feed.
type Generator struct {
	Name    string
	Version string
	URI     string
}

func NewGenerator(o GeneratorOptions) (Generator, error) {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Name, validation.Required.Error("generator must have a name")),
	)
	if err != nil {
		return Generator{}, newValidationError("generator", err)
	}
	return Generator{Name: o.Name, Version: o.Version, URI: o.URI}, nil
}

func (g Generator) element() *xmltree.Node {
	return xmltree.New("generator").
		AttrIf("version", g.Version).
		AttrIf("uri", g.URI).
		SetText(g.Name)
}
