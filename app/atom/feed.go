// Package atom builds Atom 1.0 feed documents.
//
// A Feed is constructed from FeedOptions, entries are attached with
// AddEntry and the document is rendered with Render or String. A Feed is
// not safe for concurrent use.
package atom

import (
	"fmt"
	"io"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lysyi3m/pub-atom/app/xmltree"
)

const Namespace = "http://www.w3.org/2005/Atom"

type FeedOptions struct {
	ID        string            `yaml:"id" json:"id"`
	Title     string            `yaml:"title" json:"title"`
	Updated   Timestamp         `yaml:"updated" json:"updated"`
	Author    *PersonOptions    `yaml:"author" json:"author"`
	Links     []LinkOptions     `yaml:"links" json:"links"`
	Generator *GeneratorOptions `yaml:"generator" json:"generator"`
	Icon      string            `yaml:"icon" json:"icon"`
	Logo      string            `yaml:"logo" json:"logo"`
	Rights    *TextOptions      `yaml:"rights" json:"rights"`
	Subtitle  *TextOptions      `yaml:"subtitle" json:"subtitle"`
	// Domain enables tag URI generation for entries without an ID.
	Domain string `yaml:"domain" json:"domain"`
}

type Feed struct {
	id        string
	title     string
	updated   Timestamp
	author    *Person
	generator Generator
	domain    string
	entries   []Entry

	doc      *xmltree.Node
	settings settings
}

func NewFeed(o FeedOptions, opts ...Option) (*Feed, error) {
	s := newSettings(opts)

	err := validation.ValidateStruct(&o,
		validation.Field(&o.ID, validation.Required.Error("feed id is required")),
		validation.Field(&o.Title, validation.Required.Error("feed title is required")),
	)
	if err != nil {
		return nil, newValidationError("feed", err)
	}

	f := &Feed{
		id:       o.ID,
		title:    o.Title,
		updated:  o.Updated,
		domain:   o.Domain,
		settings: s,
	}
	if f.updated.IsZero() {
		f.updated = At(s.now())
	}
	updated, err := ToISO(f.updated)
	if err != nil {
		return nil, err
	}

	if o.Author != nil {
		author, err := NewPerson(*o.Author)
		if err != nil {
			return nil, err
		}
		f.author = &author
	}

	links := make([]Link, 0, len(o.Links))
	for i, lo := range o.Links {
		link, err := NewLink(lo)
		if err != nil {
			return nil, fmt.Errorf("link %d: %w", i, err)
		}
		links = append(links, link)
	}

	genOpts := s.generator
	if o.Generator != nil {
		genOpts = *o.Generator
	}
	if f.generator, err = NewGenerator(genOpts); err != nil {
		return nil, err
	}

	var rights, subtitle *Text
	if o.Rights != nil {
		t, err := NewText(*o.Rights)
		if err != nil {
			return nil, fmt.Errorf("rights: %w", err)
		}
		rights = &t
	}
	if o.Subtitle != nil {
		t, err := NewText(*o.Subtitle)
		if err != nil {
			return nil, fmt.Errorf("subtitle: %w", err)
		}
		subtitle = &t
	}

	doc := xmltree.New("feed").Attr("xmlns", Namespace)
	doc.Element("id", f.id)
	doc.Element("title", f.title)
	doc.Element("updated", updated)
	if f.author != nil {
		doc.Append(f.author.element("author"))
	}
	for _, link := range links {
		doc.Append(link.element())
	}
	doc.Append(f.generator.element())
	doc.ElementIf("icon", o.Icon)
	doc.ElementIf("logo", o.Logo)
	if rights != nil {
		doc.Append(rights.element("rights"))
	}
	if subtitle != nil {
		doc.Append(subtitle.element("subtitle"))
	}
	f.doc = doc

	return f, nil
}

// AddEntry validates o, resolves its id and author against the feed and
// appends it. Nothing is attached when an error is returned.
func (f *Feed) AddEntry(o EntryOptions) (Entry, error) {
	e, err := newEntry(o, f.settings.now)
	if err != nil {
		return Entry{}, err
	}

	if e.ID == "" {
		if f.domain == "" {
			return Entry{}, &ConfigurationError{Entry: e.Title, Err: ErrDomainRequired}
		}
		if e.Path == "" {
			return Entry{}, &ConfigurationError{Entry: e.Title, Err: ErrPathRequired}
		}
		if e.ID, err = TagURI(f.domain, e.referenceDate, e.Path); err != nil {
			return Entry{}, err
		}
		f.settings.logger.Debug("Generated entry id", "feed", f.id, "entry", e.Title, "id", e.ID)
	}

	if e.Author == nil {
		if f.author == nil {
			return Entry{}, &ConfigurationError{Entry: e.Title, Err: ErrAuthorRequired}
		}
		author := *f.author
		e.Author = &author
		f.settings.logger.Debug("Entry inherits feed author", "feed", f.id, "entry", e.Title, "author", author.Name)
	}

	node, err := e.element()
	if err != nil {
		return Entry{}, err
	}
	f.doc.Append(node)
	f.entries = append(f.entries, *e)

	return e.clone(), nil
}

func (f *Feed) ID() string {
	return f.id
}

func (f *Feed) Title() string {
	return f.title
}

func (f *Feed) Domain() string {
	return f.domain
}

func (f *Feed) Updated() Timestamp {
	return f.updated
}

func (f *Feed) Generator() Generator {
	return f.generator
}

// Author returns the feed-level author, if any.
func (f *Feed) Author() (Person, bool) {
	if f.author == nil {
		return Person{}, false
	}
	return *f.author, true
}

// Entries returns copies of the attached entries in document order.
func (f *Feed) Entries() []Entry {
	entries := make([]Entry, len(f.entries))
	for i, e := range f.entries {
		entries[i] = e.clone()
	}
	return entries
}

// Render serializes the feed document. It does not modify the feed.
func (f *Feed) Render() (string, error) {
	return xmltree.Render(f.doc)
}

func (f *Feed) WriteTo(w io.Writer) (int64, error) {
	out, err := f.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}

// String renders the feed. The tree is always well-formed, so a render
// failure is a bug and panics.
func (f *Feed) String() string {
	out, err := f.Render()
	if err != nil {
		f.settings.logger.Error("Failed to render feed", "feed", f.id, "error", err)
		panic(err)
	}
	return out
}
