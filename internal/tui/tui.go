package tui

import (
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/tatianab/asciiliens/internal/engine"
	"github.com/tatianab/asciiliens/internal/models"
	"github.com/tatianab/asciiliens/internal/render"
)

type sessionState int

const (
	stateIntro sessionState = iota
	statePlaying
	stateOver
	stateDone
)

// Result summarises one finished game.
type Result struct {
	SessionID string
	Status    models.Status
	Score     int
	Turns     int
	Quit      bool
}

// Options configures a session.
type Options struct {
	Bounds    models.Bounds
	Formation *models.Formation
	Styles    render.Styles
}

type model struct {
	state     sessionState
	opts      Options
	world     *models.World
	sessionID string
	keys      keyMap
	help      help.Model
	styles    render.Styles
	quit      bool
	taunt     int
	last      engine.TurnResult
	results   []Result
	err       error
}

func NewModel(opts Options) model {
	h := help.New()
	h.Styles.ShortKey = opts.Styles.Help
	h.Styles.ShortDesc = opts.Styles.Help

	return model{
		state:  stateIntro,
		opts:   opts,
		keys:   defaultKeyMap(),
		help:   h,
		styles: opts.Styles,
		taunt:  -1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case stateIntro:
			return m.updateIntro(msg)
		case statePlaying:
			return m.updatePlaying(msg)
		case stateOver:
			return m.updateOver(msg)
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = stateDone
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		return m.startGame()
	case key.Matches(msg, m.keys.Decline):
		m.taunt = (m.taunt + 1) % len(taunts)
	}
	return m, nil
}

func (m model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var action models.Action
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		m.state = stateDone
		m.record()
		log.Printf("session %s: quit at turn %d with score %d", m.sessionID, m.world.Turn, m.world.Score)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		action = models.MoveLeft
	case key.Matches(msg, m.keys.Right):
		action = models.MoveRight
	case key.Matches(msg, m.keys.Fire):
		action = models.Fire
	default:
		return m, nil
	}

	res, err := engine.ApplyTurn(m.world, action)
	if err != nil {
		// A key that arrives after the final turn is ignored.
		if errors.Is(err, engine.ErrAlreadyOver) {
			return m, nil
		}
		m.err = err
		m.state = stateDone
		return m, tea.Quit
	}
	m.last = res
	if len(res.Destroyed) > 0 {
		log.Printf("session %s: turn %d destroyed %d alien(s)", m.sessionID, res.Turn, len(res.Destroyed))
	}

	if res.Status.Over() {
		m.state = stateOver
		m.record()
		log.Printf("session %s: %s after %d turns with score %d", m.sessionID, res.Status, res.Turn, res.Score)
	}
	return m, nil
}

func (m model) updateOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		return m.startGame()
	case key.Matches(msg, m.keys.Decline), key.Matches(msg, m.keys.Quit):
		m.state = stateDone
		return m, tea.Quit
	}
	return m, nil
}

func (m model) startGame() (tea.Model, tea.Cmd) {
	w, err := engine.NewWorld(m.opts.Bounds, m.opts.Formation)
	if err != nil {
		m.err = err
		m.state = stateDone
		return m, tea.Quit
	}
	m.world = w
	m.sessionID = uuid.NewString()
	m.quit = false
	m.last = engine.TurnResult{}
	m.state = statePlaying
	log.Printf("session %s: started %s on %dx%d", m.sessionID, m.opts.Formation.Name, w.Bounds.Width, w.Bounds.Height)
	return m, nil
}

func (m *model) record() {
	m.results = append(m.results, Result{
		SessionID: m.sessionID,
		Status:    m.world.Status,
		Score:     m.world.Score,
		Turns:     m.world.Turn,
		Quit:      m.quit,
	})
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateIntro:
		s = m.introView()

	case statePlaying:
		status := m.styles.StatusLine(m.world)
		if n := len(m.last.Destroyed); n > 0 {
			status += m.styles.Win.Render(fmt.Sprintf("  +%d", n*engine.AlienPoints))
		}
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Frame(render.Render(m.world)),
			status,
			m.help.View(m.keys),
		)

	case stateOver:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Frame(render.Render(m.world)),
			m.styles.Banner(m.world, false),
			playAgainPrompt,
		)

	case stateDone:
		if m.world == nil {
			return ""
		}
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Frame(render.Render(m.world)),
			m.styles.Banner(m.world, m.quit),
		)
	}

	return s + "\n"
}

// Run plays sessions until the player leaves and returns one Result per
// finished or abandoned game.
func Run(opts Options, progOpts ...tea.ProgramOption) ([]Result, error) {
	p := tea.NewProgram(NewModel(opts), progOpts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running game: %w", err)
	}
	m, ok := final.(model)
	if !ok {
		return nil, fmt.Errorf("unexpected model %T", final)
	}
	return m.results, m.err
}
