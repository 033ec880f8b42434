package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/opusquiz/internal/catalog"
	"github.com/abhisek/opusquiz/internal/router"
	"github.com/abhisek/opusquiz/internal/screen"
	"github.com/abhisek/opusquiz/internal/screens/quiz"
	"github.com/abhisek/opusquiz/internal/screens/setup"
	"github.com/abhisek/opusquiz/internal/session"
	"github.com/abhisek/opusquiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Catalog    *catalog.Catalog
	Controller *session.Controller
	Quiz       quiz.Options

	// Groups, when set, starts a quiz over these groups immediately
	// instead of showing the setup screen first.
	Groups []string

	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	logger  *slog.Logger
	width   int
	height  int
}

// newAppModel creates an AppModel rooted at the setup screen.
func newAppModel(opts Options) (AppModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := AppModel{
		router: router.New(setup.New(opts.Catalog, opts.Controller, opts.Quiz)),
		logger: logger,
	}

	if len(opts.Groups) > 0 {
		items, err := opts.Catalog.Select(opts.Groups...)
		if err != nil {
			return AppModel{}, err
		}
		if err := opts.Controller.Start(items); err != nil {
			return AppModel{}, err
		}
		m.initCmd = m.router.Push(quiz.New(opts.Controller, opts.Quiz))
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		before := m.activeTitle()
		cmd := m.router.Update(msg)
		m.logger.Debug("screen changed", "from", before, "to", m.activeTitle(), "depth", m.router.Depth())
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) activeTitle() string {
	if active := m.router.Active(); active != nil {
		return active.Title()
	}
	return ""
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(m.activeTitle(), status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return fmt.Errorf("start quiz: %w", err)
	}
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
