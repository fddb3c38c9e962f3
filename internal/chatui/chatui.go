// Package chatui is a terminal walkthrough of the onboarding flow for
// local development. It drives the real engine against the local store,
// so a full run leaves the same records a client session would.
package chatui

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/medscroll/onboarding/internal/catalog"
	"github.com/medscroll/onboarding/internal/onboarding"
	"github.com/medscroll/onboarding/internal/ui/components"
	"github.com/medscroll/onboarding/internal/ui/theme"
)

// Engine is the slice of the onboarding service the walkthrough needs.
type Engine interface {
	Ask(ctx context.Context, userID string, answer *onboarding.Answer) (catalog.Question, error)
}

type questionMsg struct {
	question catalog.Question
}

type submitMsg struct {
	response string
}

type finishedMsg struct{}

type errMsg struct {
	err error
}

// exchange is one completed question/answer pair shown above the prompt.
type exchange struct {
	prompt   string
	response string
}

// Model is the root Bubble Tea model for the walkthrough.
type Model struct {
	svc    Engine
	userID string

	question   catalog.Question
	loaded     bool
	hasOptions bool
	menu       components.Menu
	input      components.TextInput

	history  []exchange
	finished bool
	err      error

	width  int
	height int
}

// New creates a walkthrough for the given user.
func New(svc Engine, userID string) Model {
	return Model{svc: svc, userID: userID}
}

func (m Model) Init() tea.Cmd {
	return m.ask(nil)
}

// ask submits an answer (nil for the opening call) and delivers the
// next question as a message.
func (m Model) ask(answer *onboarding.Answer) tea.Cmd {
	svc, userID := m.svc, m.userID
	return func() tea.Msg {
		q, err := svc.Ask(context.Background(), userID, answer)
		if err != nil {
			return errMsg{err: err}
		}
		return questionMsg{question: q}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionMsg:
		m.question = msg.question
		m.loaded = true
		return m, m.present()

	case submitMsg:
		m.history = append(m.history, exchange{prompt: m.question.Prompt, response: msg.response})
		return m, m.submit(msg.response)

	case finishedMsg:
		m.finished = true
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.finished || m.err != nil {
			return m, tea.Quit
		}
		if !m.loaded {
			return m, nil
		}
		if m.hasOptions {
			var cmd tea.Cmd
			m.menu, cmd = m.menu.Update(msg)
			return m, cmd
		}
		if msg.String() == "enter" {
			if v := strings.TrimSpace(m.input.Value()); v != "" {
				return m, func() tea.Msg { return submitMsg{response: v} }
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// present rebuilds the answer widget for the current question.
func (m *Model) present() tea.Cmd {
	m.hasOptions = len(m.question.Options) > 0
	if m.hasOptions {
		items := make([]components.MenuItem, 0, len(m.question.Options))
		for _, opt := range m.question.Options {
			title := opt.Title
			items = append(items, components.MenuItem{
				Label: title,
				Action: func() tea.Cmd {
					return func() tea.Msg { return submitMsg{response: title} }
				},
			})
		}
		m.menu = components.NewMenu(items)
		return nil
	}
	m.input = components.NewTextInput("type your answer", 120)
	return m.input.Init()
}

// submit sends the answer to the engine. Answering the terminal
// question ends the walkthrough once the engine has recorded it.
func (m Model) submit(response string) tea.Cmd {
	answer := &onboarding.Answer{
		Prompt:   m.question.Prompt,
		Progress: m.question.Progress,
		Options:  m.question.Options,
		Response: response,
	}
	done := m.question.Progress == catalog.Terminal
	next := m.ask(answer)
	return func() tea.Msg {
		msg := next()
		if em, ok := msg.(errMsg); ok {
			return em
		}
		if done {
			return finishedMsg{}
		}
		return msg
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	if m.width == 0 {
		return v
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("MedScroll onboarding walkthrough"))
	b.WriteString("\n\n")

	for _, ex := range m.history {
		b.WriteString(theme.Hint.Render(ex.prompt))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("  → " + ex.response))
		b.WriteString("\n\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press any key to exit"))

	case m.finished:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("Onboarding complete. Profile saved."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("press any key to exit"))

	case !m.loaded:
		b.WriteString(theme.Hint.Render("loading..."))

	default:
		b.WriteString(theme.Body.Bold(true).Render(m.question.Prompt))
		b.WriteString("\n\n")
		if m.hasOptions {
			b.WriteString(m.menu.View())
			b.WriteString("\n")
			b.WriteString(theme.Hint.Render("↑↓ navigate · enter select · esc quit"))
		} else {
			b.WriteString("  " + m.input.View())
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Render("enter submit · esc quit"))
		}
	}

	v.SetContent(b.String())
	return v
}

// Run starts the walkthrough program.
func Run(svc Engine, userID string) error {
	p := tea.NewProgram(New(svc, userID))
	_, err := p.Run()
	return err
}
