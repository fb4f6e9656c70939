package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/bilingual-text-game/internal/language/english"
	"github.com/tatianab/bilingual-text-game/internal/language/gaelic"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

// renderStory lays out the story with the Gaelic first and, when showL1 is
// set, the English underneath each heading and paragraph.
func renderStory(s story.Story, showL1 bool, width int) string {
	blocks := make([]string, 0, len(s))
	for _, e := range s {
		switch e := e.(type) {
		case story.Heading:
			text := titleStyle.Render(e.Text.L2)
			if showL1 {
				text += "\n" + translationStyle.Render(e.Text.L1)
			}
			blocks = append(blocks, text)
		case story.Paragraph:
			base := gameStyle
			if e.Style == story.StyleCombat {
				base = combatStyle
			}
			text := wrap(base, width).Render(renderParagraph(e, story.L2, base))
			if showL1 {
				text += "\n" + wrap(translationStyle, width).Render(renderParagraph(e, story.L1, translationStyle))
			}
			blocks = append(blocks, text)
		case story.UserInput:
			blocks = append(blocks, wrap(userStyle, width).Render("> "+e.Input))
		}
	}
	return strings.Join(blocks, "\n\n")
}

func wrap(style lipgloss.Style, width int) lipgloss.Style {
	if width <= 0 {
		return style
	}
	return style.Width(width)
}

// renderParagraph styles each entity name by its kind and the rest of the
// text with base. Spacing follows story.Paragraph.Text.
func renderParagraph(p story.Paragraph, lang story.Language, base lipgloss.Style) string {
	var b strings.Builder
	for i, e := range p.Elements {
		var parts []string
		switch e := e.(type) {
		case story.Bilingual:
			for _, f := range e.Side(lang) {
				parts = append(parts, renderFragment(f, base))
			}
		case story.StaticText:
			parts = append(parts, base.Render(e.Text))
		}
		if i > 0 && !startsWithPunctuation(e, lang) {
			b.WriteString(base.Render(" "))
		}
		b.WriteString(strings.Join(parts, ""))
	}
	return b.String()
}

func renderFragment(f story.Fragment, base lipgloss.Style) string {
	if style, ok := kindStyles[f.Kind]; ok {
		return style.Render(f.Text)
	}
	return base.Render(f.Text)
}

func startsWithPunctuation(e story.ParagraphElement, lang story.Language) bool {
	var s string
	switch e := e.(type) {
	case story.Bilingual:
		s = e.Text(lang)
	case story.StaticText:
		s = e.Text
	}
	return s != "" && strings.ContainsAny(s[:1], ",.:;!?")
}

func itemLabel(name models.Name, equipped bool) string {
	label := gaelic.Indefinite(name.Gaelic, false) + " / " + english.Base(name.English)
	if equipped {
		label += " *"
	}
	return kindStyles[story.KindItem].Render(label)
}
