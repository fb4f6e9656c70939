package parser

import (
	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

const blank = "__________"

// Preview is a complete or partial command the player could build, like
// "go north" or "go __________".
type Preview struct {
	// Prompt is the text of the button or menu entry selecting this preview.
	Prompt models.BilingualText
	// Text is the full command so far, with a blank where a word is missing.
	Text models.BilingualText
	// Enabled is false when no legal command can be built from the preview.
	Enabled bool
	// IsComplete reports whether Command can be executed as is.
	IsComplete bool
	Command    command.Command
	// FollowUps fill in the next missing word.
	FollowUps []Preview
}

func completePreview(prompt, text models.BilingualText, cmd command.Command) Preview {
	return Preview{
		Prompt:     prompt,
		Text:       text,
		Enabled:    true,
		IsComplete: true,
		Command:    cmd,
	}
}

// partialPreview is the keyword followed by a blank, completed by followUps.
func partialPreview(keyword models.BilingualText, followUps []Preview) Preview {
	return Preview{
		Prompt:    models.BilingualText{L1: keyword.L1 + "...", L2: keyword.L2 + "..."},
		Text:      join(keyword, models.BilingualText{L1: blank, L2: blank}),
		Enabled:   len(followUps) > 0,
		FollowUps: followUps,
	}
}

func join(a, b models.BilingualText) models.BilingualText {
	return models.BilingualText{L1: a.L1 + " " + b.L1, L2: a.L2 + " " + b.L2}
}
