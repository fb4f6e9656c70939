// Package tui is the terminal front end of the game.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tatianab/bilingual-text-game/internal/game"
	"github.com/tatianab/bilingual-text-game/internal/models"
	"github.com/tatianab/bilingual-text-game/internal/parser"
	"github.com/tatianab/bilingual-text-game/internal/story"
)

// WorldGenerator builds a world from a player's hint.
type WorldGenerator interface {
	GenerateWorld(ctx context.Context, hint string) (models.State, error)
}

// Options wires the front end to the rest of the game.
type Options struct {
	// World returns the world to play when there is no generator.
	World func() (models.State, error)
	// Generator, when set, asks the player for a hint and generates the
	// world from it.
	Generator WorldGenerator
	// NewGame starts a session in a world.
	NewGame func(models.State) (*game.Game, error)
	Logger  *zap.Logger
}

type sessionState int

const (
	stateInputHint sessionState = iota
	stateLoading
	statePlaying
	stateError
)

type model struct {
	state     sessionState
	opts      Options
	game      *game.Game
	story     story.Story
	showL1    bool
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	combatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF8787"))

	translationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	kindStyles = map[story.EntityKind]lipgloss.Style{
		story.KindEnemy:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")).Bold(true),
		story.KindCompanion: lipgloss.NewStyle().Foreground(lipgloss.Color("#87D787")).Bold(true),
		story.KindItem:      lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD75F")),
		story.KindDirection: lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")),
		story.KindOther:     lipgloss.NewStyle().Bold(true),
	}
)

const (
	hintPlaceholder = "Enter a hint or 'random'..."
	playPlaceholder = "Dè nì thu? / What do you do?"
	logShare        = 0.75
)

func newModel(opts Options) model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = hintPlaceholder
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40
	ti.ShowSuggestions = true

	m := model{
		state:     stateInputHint,
		opts:      opts,
		textInput: ti,
		showL1:    true,
	}
	if opts.Generator == nil {
		m.state = stateLoading
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.state == stateLoading {
		return tea.Batch(textinput.Blink, m.startGame(""))
	}
	return textinput.Blink
}

type gameStartedMsg struct {
	game  *game.Game
	intro story.Story
}

type errMsg struct {
	err error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlT:
			m.showL1 = !m.showL1
			m.refreshLog()
			return m, nil

		case tea.KeyEnter:
			if m.state == stateInputHint {
				hint := m.textInput.Value()
				if hint == "" {
					hint = "random"
				}
				m.state = stateLoading
				return m, m.startGame(hint)
			}
			if m.state == statePlaying {
				return m.submit()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		if m.state == statePlaying {
			m.refreshLog()
		}

	case gameStartedMsg:
		m.game = msg.game
		m.story = msg.intro
		m.state = statePlaying
		if m.viewport.Width == 0 {
			m.viewport = viewport.New(m.logWidth(), max(m.height-6, 1))
		}
		m.textInput.Placeholder = playPlaceholder
		m.textInput.Reset()
		m.textInput.SetSuggestions(m.game.ValidInputs())
		m.refreshLog()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	if m.state == stateInputHint || m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	action := strings.TrimSpace(m.textInput.Value())
	if action == "" {
		return m, nil
	}
	m.textInput.Reset()

	switch action {
	case "/quit":
		return m, tea.Quit
	case "/restart":
		m.game = nil
		m.story = nil
		if m.opts.Generator == nil {
			m.state = stateLoading
			return m, m.startGame("")
		}
		m.state = stateInputHint
		m.textInput.Placeholder = hintPlaceholder
		m.textInput.SetSuggestions(nil)
		return m, nil
	}

	out, err := m.game.Submit(action)
	switch {
	case errors.Is(err, game.ErrGameOver):
		out = story.Story{story.UserInput{Input: action}, story.NewParagraph(story.FromText(models.BilingualText{
			L1: "The game is over. Type /restart or /quit.",
			L2: "Tha an geama seachad. Sgrìobh /restart no /quit.",
		}))}
	case err != nil:
		m.opts.Logger.Error("turn failed", zap.String("input", action), zap.Error(err))
		m.err = err
		m.state = stateError
		return m, nil
	}

	m.story = append(m.story, out...)
	m.textInput.SetSuggestions(m.game.ValidInputs())
	m.refreshLog()
	return m, nil
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateInputHint:
		s = fmt.Sprintf(
			"Fàilte! Welcome!\n\n%s\n\n%s",
			"Give me a hint about the world you want to play in:",
			m.textInput.View(),
		)

	case stateLoading:
		s = "\n  Preparing your world... please wait.\n"

	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Commands: /restart, /quit. Tab completes, ctrl+t shows or hides the English.")

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) logWidth() int {
	return int(float64(m.width) * logShare)
}

// refreshLog re-renders the whole story, which is needed whenever the width
// or the translation toggle changes.
func (m *model) refreshLog() {
	m.viewport.SetContent(renderStory(m.story, m.showL1, m.logWidth()))
	m.viewport.GotoBottom()
}

func (m model) renderState() string {
	if m.game == nil {
		return ""
	}
	s := m.game.State()
	player := s.PlayerCharacter()

	var b strings.Builder

	b.WriteString(titleStyle.Render("ÀITE / LOCATION") + "\n")
	if room, ok := s.RoomOf(s.Player); ok {
		b.WriteString(room.Name.L2 + " / " + room.Name.L1 + "\n")
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("SLÀINTE / HEALTH") + "\n")
	fmt.Fprintf(&b, "%d/%d\n\n", player.CurrentHealth, player.MaxHealth)

	b.WriteString(titleStyle.Render("MAOIN / INVENTORY") + "\n")
	if len(player.Items) == 0 {
		b.WriteString("(falamh / empty)\n")
	}
	for _, id := range player.Items {
		name := s.Items[id].Name
		b.WriteString("- " + itemLabel(name, id == player.EquippedWeapon) + "\n")
	}
	b.WriteString("\n")

	if !s.GameOver {
		b.WriteString(titleStyle.Render("ÀITHNEAN / COMMANDS") + "\n")
		b.WriteString(renderPreviews(m.game.Previews(), ""))
	}

	stateWidth := int(float64(m.width) * 0.23)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(b.String())
}

func (m model) startGame(hint string) tea.Cmd {
	return func() tea.Msg {
		var (
			world models.State
			err   error
		)
		if m.opts.Generator != nil {
			world, err = m.opts.Generator.GenerateWorld(context.Background(), hint)
		} else {
			world, err = m.opts.World()
		}
		if err != nil {
			return errMsg{err}
		}

		g, err := m.opts.NewGame(world)
		if err != nil {
			return errMsg{err}
		}
		intro, err := g.Intro()
		if err != nil {
			return errMsg{err}
		}
		return gameStartedMsg{game: g, intro: intro}
	}
}

// Run starts the terminal UI and blocks until the player quits.
func Run(opts Options) error {
	if opts.NewGame == nil {
		return errors.New("tui: NewGame is required")
	}
	if opts.Generator == nil && opts.World == nil {
		return errors.New("tui: one of World or Generator is required")
	}
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func renderPreviews(previews []parser.Preview, indent string) string {
	var b strings.Builder
	for _, p := range previews {
		label := p.Prompt.L2 + " (" + p.Prompt.L1 + ")"
		if !p.Enabled {
			label = disabledStyle.Render(label)
		}
		b.WriteString(indent + label + "\n")
		if len(p.FollowUps) > 0 {
			b.WriteString(renderPreviews(p.FollowUps, indent+"  "))
		}
	}
	return b.String()
}
