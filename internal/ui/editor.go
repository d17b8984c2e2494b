package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/create-example/internal/config"
)

type editorState int

const (
	stateMenu editorState = iota
	stateForm
	stateConfirm
	stateSaved
	stateError
)

// EditorModel is the bubbletea model of the configuration editor
type EditorModel struct {
	state       editorState
	values      *ConfigValues
	menuIndex   int
	currentForm *huh.Form
	err         error
	width       int
	height      int
	dirty       bool
	saveFunc    func(*config.Config) error
	accessible  bool
}

type EditorOptions struct {
	Config     *config.Config
	SaveFunc   func(*config.Config) error
	Accessible bool
}

func NewEditorModel(opts EditorOptions) EditorModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	return EditorModel{
		state:      stateMenu,
		values:     FromConfig(cfg),
		saveFunc:   opts.SaveFunc,
		accessible: opts.Accessible,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateForm && m.currentForm != nil {
			return m.forwardToForm(msg)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateForm:
			if msg.String() == "esc" {
				m.state = stateMenu
				return m, nil
			}
			return m.forwardToForm(msg)
		case stateConfirm:
			return m.updateConfirm(msg)
		case stateSaved, stateError:
			return m, tea.Quit
		}
	}

	if m.state == stateForm && m.currentForm != nil {
		return m.forwardToForm(msg)
	}
	return m, nil
}

func (m EditorModel) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.currentForm == nil {
		return m, nil
	}
	form, cmd := m.currentForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.currentForm = f
	}
	if m.currentForm.State == huh.StateCompleted {
		m.dirty = true
		m.state = stateMenu
		return m, nil
	}
	return m, cmd
}

func (m EditorModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		if m.dirty {
			m.state = stateConfirm
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}

	case "down", "j":
		if m.menuIndex < len(Categories) {
			m.menuIndex++
		}

	case "enter":
		if m.menuIndex == len(Categories) {
			return m.handleSave()
		}
		m.state = stateForm
		m.currentForm = GetFormForCategory(Categories[m.menuIndex].ID, m.values)
		if m.accessible {
			m.currentForm = m.currentForm.WithAccessible(true)
		}
		return m, m.currentForm.Init()

	case "s":
		return m.handleSave()
	}

	return m, nil
}

func (m EditorModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.handleSave()
	case "n", "N", "esc":
		return m, tea.Quit
	case "c":
		m.state = stateMenu
	}
	return m, nil
}

func (m EditorModel) handleSave() (tea.Model, tea.Cmd) {
	cfg, err := m.values.ToConfig()
	if err != nil {
		m.state = stateError
		m.err = err
		return m, nil
	}

	if m.saveFunc != nil {
		if err := m.saveFunc(cfg); err != nil {
			m.state = stateError
			m.err = err
			return m, nil
		}
	}

	m.state = stateSaved
	m.dirty = false
	return m, nil
}

func (m EditorModel) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("create-example configuration"))
	s.WriteString("\n\n")

	switch m.state {
	case stateMenu:
		s.WriteString(m.renderMenu())
	case stateForm:
		if m.currentForm != nil {
			s.WriteString(m.currentForm.View())
		}
	case stateConfirm:
		s.WriteString(m.renderConfirm())
	case stateSaved:
		s.WriteString(SuccessStyle.Render("Configuration saved."))
		s.WriteString("\n\nPress any key to exit.")
	case stateError:
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\nPress any key to exit.")
	}

	return s.String()
}

func (m EditorModel) renderMenu() string {
	var s strings.Builder

	for i, cat := range Categories {
		cursor := "  "
		style := UnselectedStyle
		if i == m.menuIndex {
			cursor = "> "
			style = SelectedStyle
		}
		s.WriteString(style.Render(cursor + cat.Name))
		if i == m.menuIndex {
			s.WriteString(DescriptionStyle.Render("  " + cat.Description))
		}
		s.WriteString("\n")
	}

	saveStyle := UnselectedStyle
	saveCursor := "  "
	if m.menuIndex == len(Categories) {
		saveCursor = "> "
		saveStyle = SelectedStyle
	}
	saveText := saveCursor + "Save configuration"
	if m.dirty {
		saveText += " *"
	}
	s.WriteString("\n")
	s.WriteString(saveStyle.Render(saveText))
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("↑/↓ navigate • enter select • s save • q quit"))

	return s.String()
}

func (m EditorModel) renderConfirm() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(warnColor).
		Padding(1, 2).
		Render("You have unsaved changes.\n\nSave before quitting?\n\n[y] Yes  [n] No  [c] Cancel")
}

// RunConfigEditor opens the interactive configuration editor
func RunConfigEditor(opts EditorOptions) error {
	p := tea.NewProgram(NewEditorModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
