package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"warlang/internal/diagfmt"
	"warlang/internal/driver"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive WarLang session",
	Long: `Repl reads WarLang statements and shows the Python they compile to.
A statement block is submitted once its braces balance.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		model := newReplModel(maxDiagnostics(cmd))
		_, err := tea.NewProgram(model).Run()
		return err
	},
}

var (
	replPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	replMoreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	replOutStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	replErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	replHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

type replModel struct {
	ti             textinput.Model
	history        []string
	pending        []string
	maxDiagnostics int
}

func newReplModel(maxDiagnostics int) *replModel {
	ti := textinput.New()
	ti.Prompt = replPromptStyle.Render("war> ")
	ti.Placeholder = "soldier x = 5;"
	ti.Focus()
	return &replModel{
		ti:             ti,
		maxDiagnostics: maxDiagnostics,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitLine(m.ti.Value())
			m.ti.SetValue("")
			m.syncPrompt()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *replModel) syncPrompt() {
	if len(m.pending) > 0 {
		m.ti.Prompt = replMoreStyle.Render("...> ")
	} else {
		m.ti.Prompt = replPromptStyle.Render("war> ")
	}
}

// submitLine buffers the line and compiles the buffer once every '{'
// has a matching '}'.
func (m *replModel) submitLine(line string) {
	prompt := "war> "
	if len(m.pending) > 0 {
		prompt = "...> "
	}
	m.history = append(m.history, prompt+line)

	if strings.TrimSpace(line) == "" && len(m.pending) == 0 {
		return
	}
	m.pending = append(m.pending, line)

	src := strings.Join(m.pending, "\n")
	if strings.Count(src, "{") > strings.Count(src, "}") {
		return
	}
	m.pending = nil
	m.evaluate(src)
}

func (m *replModel) evaluate(src string) {
	res, err := driver.CompileSource("repl.war", []byte(src), driver.Options{
		MaxDiagnostics: m.maxDiagnostics,
	})
	if err != nil {
		m.history = append(m.history, replErrStyle.Render(err.Error()))
		return
	}

	if res.Bag.Len() > 0 {
		var sb strings.Builder
		diagfmt.Pretty(&sb, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			PathMode:  diagfmt.PathModeBasename,
			ShowNotes: true,
		})
		style := replErrStyle
		if res.Ok() {
			style = replHintStyle
		}
		for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
			m.history = append(m.history, style.Render(line))
		}
	}
	if res.Ok() {
		for _, line := range strings.Split(strings.TrimRight(res.Output, "\n"), "\n") {
			m.history = append(m.history, replOutStyle.Render(line))
		}
	}
}

func (m *replModel) View() string {
	var sb strings.Builder
	sb.WriteString(replHintStyle.Render("warlang repl (ctrl+c to quit)"))
	sb.WriteString("\n")
	for _, line := range m.history {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(m.ti.View())
	sb.WriteString("\n")
	return sb.String()
}
