// Package story describes narration output: an ordered list of headings,
// paragraphs and echoed player input, each carrying text in both languages.
package story

import (
	"strings"

	"github.com/tatianab/bilingual-text-game/internal/models"
)

// Language selects one side of a bilingual text.
type Language int

const (
	L1 Language = iota
	L2
)

// EntityKind classifies a name fragment so the display can style it. The
// narrator never looks at it.
type EntityKind int

const (
	KindText EntityKind = iota
	KindEnemy
	KindCompanion
	KindItem
	KindDirection
	KindOther
)

func (k EntityKind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindCompanion:
		return "companion"
	case KindItem:
		return "item"
	case KindDirection:
		return "direction"
	case KindOther:
		return "other"
	}
	return "text"
}

// Fragment is a run of text. Names of game entities carry their kind.
type Fragment struct {
	Text string
	Kind EntityKind
}

func Text(s string) Fragment {
	return Fragment{Text: s}
}

func Ref(kind EntityKind, s string) Fragment {
	return Fragment{Text: s, Kind: kind}
}

// Story is the ordered narration shown to the player.
type Story []Element

// Element is a Heading, a Paragraph or a UserInput.
type Element interface {
	isElement()
}

// Heading introduces a new section, usually a room.
type Heading struct {
	Text models.BilingualText
}

// Style hints how a paragraph should be presented.
type Style int

const (
	StylePlain Style = iota
	StyleCombat
)

type Paragraph struct {
	Elements []ParagraphElement
	Style    Style
}

// UserInput echoes exactly what the player typed.
type UserInput struct {
	Input string
}

func (Heading) isElement()   {}
func (Paragraph) isElement() {}
func (UserInput) isElement() {}

// ParagraphElement is a Bilingual sentence or language-neutral StaticText.
type ParagraphElement interface {
	isParagraphElement()
}

// Bilingual holds the same sentence in both languages.
type Bilingual struct {
	L1 []Fragment
	L2 []Fragment
}

// StaticText is shown identically in both languages, like punctuation.
type StaticText struct {
	Text string
}

func (Bilingual) isParagraphElement()  {}
func (StaticText) isParagraphElement() {}

// FromText wraps a plain bilingual text with no entity references.
func FromText(t models.BilingualText) Bilingual {
	return Bilingual{L1: []Fragment{Text(t.L1)}, L2: []Fragment{Text(t.L2)}}
}

// NewParagraph builds a plain paragraph.
func NewParagraph(elements ...ParagraphElement) Paragraph {
	return Paragraph{Elements: elements}
}

// Side returns the fragments for lang.
func (b Bilingual) Side(lang Language) []Fragment {
	if lang == L1 {
		return b.L1
	}
	return b.L2
}

// Text renders b in lang without styling.
func (b Bilingual) Text(lang Language) string {
	var sb strings.Builder
	for _, f := range b.Side(lang) {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// Text renders p in lang without styling. Elements are separated by spaces
// except before static punctuation.
func (p Paragraph) Text(lang Language) string {
	var sb strings.Builder
	for i, e := range p.Elements {
		var s string
		switch e := e.(type) {
		case Bilingual:
			s = e.Text(lang)
		case StaticText:
			s = e.Text
		}
		if i > 0 && !startsWithPunctuation(s) {
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// Text renders the whole story in lang, one element per line.
func (s Story) Text(lang Language) string {
	lines := make([]string, 0, len(s))
	for _, e := range s {
		switch e := e.(type) {
		case Heading:
			if lang == L1 {
				lines = append(lines, e.Text.L1)
			} else {
				lines = append(lines, e.Text.L2)
			}
		case Paragraph:
			lines = append(lines, e.Text(lang))
		case UserInput:
			lines = append(lines, "> "+e.Input)
		}
	}
	return strings.Join(lines, "\n")
}

func startsWithPunctuation(s string) bool {
	return s != "" && strings.ContainsAny(s[:1], ",.:;!?")
}
