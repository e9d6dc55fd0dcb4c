package atom

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/lysyi3m/pub-atom/app/xmltree"
)

// EntryOptions describes a feed item. When ID is empty the feed derives a
// tag URI from its domain, the reference date and Path.
type EntryOptions struct {
	ID        string          `yaml:"id" json:"id"`
	Title     string          `yaml:"title" json:"title"`
	Updated   Timestamp       `yaml:"updated" json:"updated"`
	Published Timestamp       `yaml:"published" json:"published"`
	Author    *PersonOptions  `yaml:"author" json:"author"`
	Content   *ContentOptions `yaml:"content" json:"content"`
	Path      string          `yaml:"path" json:"path"`
}

type Entry struct {
	ID        string
	Title     string
	Updated   Timestamp
	Published Timestamp
	Author    *Person
	Content   *Content
	Path      string

	referenceDate Timestamp
}

// NewEntry validates o. Updated defaults to the current time.
func NewEntry(o EntryOptions) (*Entry, error) {
	return newEntry(o, time.Now)
}

func newEntry(o EntryOptions, now func() time.Time) (*Entry, error) {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Title, validation.Required.Error("entry title is required")),
	)
	if err != nil {
		return nil, newValidationError("entry", err)
	}

	e := &Entry{
		ID:        o.ID,
		Title:     o.Title,
		Updated:   o.Updated,
		Published: o.Published,
		Path:      o.Path,
	}
	if e.Updated.IsZero() {
		e.Updated = At(now())
	}
	if _, err := ToISO(e.Updated); err != nil {
		return nil, err
	}
	if !e.Published.IsZero() {
		if _, err := ToISO(e.Published); err != nil {
			return nil, err
		}
	}

	if o.Author != nil {
		author, err := NewPerson(*o.Author)
		if err != nil {
			return nil, err
		}
		e.Author = &author
	}

	if o.Content != nil {
		content, err := NewContent(*o.Content)
		if err != nil {
			return nil, err
		}
		e.Content = &content
	}

	e.referenceDate = e.Updated
	if !e.Published.IsZero() {
		e.referenceDate = e.Published
	}

	return e, nil
}

// ReferenceDate is Published when set, otherwise Updated. It is fixed at
// construction.
func (e *Entry) ReferenceDate() Timestamp {
	return e.referenceDate
}

func (e *Entry) element() (*xmltree.Node, error) {
	updated, err := ToISO(e.Updated)
	if err != nil {
		return nil, err
	}

	n := xmltree.New("entry")
	n.Element("id", e.ID)
	n.Element("title", e.Title)
	n.Element("updated", updated)
	n.Append(e.Author.element("author"))
	if e.Content != nil {
		n.Append(e.Content.element())
	}
	return n, nil
}

func (e Entry) clone() Entry {
	if e.Author != nil {
		author := *e.Author
		e.Author = &author
	}
	if e.Content != nil {
		content := *e.Content
		e.Content = &content
	}
	return e
}
