// Package parser turns player input into commands. Each command word is
// handled by a SubParser; the Parser tries them in registration order.
package parser

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tatianab/bilingual-text-game/internal/command"
	"github.com/tatianab/bilingual-text-game/internal/models"
)

// ValidationError reports input that could not be turned into a command.
// It never indicates a problem with the game itself.
type ValidationError struct {
	Message models.BilingualText
}

func (e *ValidationError) Error() string {
	return e.Message.L1
}

func invalid(l1, l2 string) *ValidationError {
	return &ValidationError{Message: models.BilingualText{L1: l1, L2: l2}}
}

// SubParser parses a single kind of command.
type SubParser interface {
	// Keyword is the leading word of the command in each language.
	Keyword() models.BilingualText
	// Help explains the command to the player.
	Help() models.BilingualText
	// Parse resolves the input following the keyword.
	Parse(rest string, state models.State) (command.Command, error)
	// ValidInputs lists every complete input accepted in state.
	ValidInputs(state models.State) (l1, l2 []string)
	Previews(state models.State) []Preview
}

// HelpEntry describes one command for the help screen.
type HelpEntry struct {
	Keyword models.BilingualText
	Text    models.BilingualText
}

type Parser struct {
	subParsers []SubParser
}

// New returns a Parser trying subParsers in the given order.
func New(subParsers ...SubParser) *Parser {
	return &Parser{subParsers: subParsers}
}

// Default returns a Parser for help, look, inventory, go, take, fight and
// wait, in that order.
func Default(k Keywords) *Parser {
	return New(
		Help(k.Help),
		Look(k.Look),
		Inventory(k.Inventory),
		Move(k.Go),
		Take(k.Take),
		Attack(k.Fight),
		Wait(k.Wait),
	)
}

// Parse turns input into a command for the player. Input that does not form
// a legal command yields a *ValidationError.
func (p *Parser) Parse(input string, state models.State) (command.Command, error) {
	input = normalize(input)
	keyword, rest := splitKeyword(input)
	for _, sp := range p.subParsers {
		k := sp.Keyword()
		if keyword == k.L1 || keyword == k.L2 {
			return sp.Parse(rest, state)
		}
	}
	return nil, invalid(
		fmt.Sprintf("Unknown command: %q.", input),
		fmt.Sprintf("Àithne neo-aithnichte: %q.", input),
	)
}

// ValidInputs lists every legal input in state. For each sub-parser the L2
// inputs come before the L1 inputs.
func (p *Parser) ValidInputs(state models.State) []string {
	var inputs []string
	for _, sp := range p.subParsers {
		l1, l2 := sp.ValidInputs(state)
		inputs = append(inputs, l2...)
		inputs = append(inputs, l1...)
	}
	return inputs
}

// Previews returns the command previews of every sub-parser.
func (p *Parser) Previews(state models.State) []Preview {
	var previews []Preview
	for _, sp := range p.subParsers {
		previews = append(previews, sp.Previews(state)...)
	}
	return previews
}

func (p *Parser) HelpEntries() []HelpEntry {
	entries := make([]HelpEntry, 0, len(p.subParsers))
	for _, sp := range p.subParsers {
		entries = append(entries, HelpEntry{Keyword: sp.Keyword(), Text: sp.Help()})
	}
	return entries
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// splitKeyword splits s at its first run of whitespace.
func splitKeyword(s string) (keyword, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// matchesName reports whether input is one of the surface forms of name in
// either language.
func matchesName(input string, name models.Name) bool {
	for _, form := range surfaceForms(name) {
		if norm.NFC.String(form) == input {
			return true
		}
	}
	return false
}
