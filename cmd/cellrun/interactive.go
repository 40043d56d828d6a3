package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/tvm-cells/boc"
	"github.com/wippyai/tvm-cells/cell"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectContract modelState = iota
	stateSelectType
	stateInput
	stateShowResult
)

type interactiveModel struct {
	err      error
	contract string
	typeName string
	result   string
	dump     string
	options  []string
	input    textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel(contract string) *interactiveModel {
	m := &interactiveModel{state: stateSelectContract, options: contractNames()}
	if _, ok := registry[contract]; ok {
		m.contract = contract
		m.state = stateSelectType
		m.options = typeNames(contract)
	}
	return m
}

type decodedMsg struct {
	err    error
	dump   string
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInput {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state != stateInput && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state != stateInput && m.selected < len(m.options)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectContract:
				m.contract = m.options[m.selected]
				m.options = typeNames(m.contract)
				m.selected = 0
				m.state = stateSelectType

			case stateSelectType:
				m.typeName = m.options[m.selected]
				m.prepareInput()
				m.state = stateInput

			case stateInput:
				return m, m.decodeInput

			case stateShowResult:
				m.state = stateInput
				m.result, m.dump, m.err = "", "", nil
			}
			return m, nil

		case "esc":
			switch m.state {
			case stateSelectType:
				m.options = contractNames()
				m.selected = 0
				m.state = stateSelectContract
			case stateInput, stateShowResult:
				m.options = typeNames(m.contract)
				m.state = stateSelectType
				m.result, m.dump, m.err = "", "", nil
			}
			return m, nil
		}

	case decodedMsg:
		m.result, m.dump, m.err = msg.result, msg.dump, msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "hex or base64 bag-of-cells"
	ti.Prompt = m.typeName + ": "
	ti.Width = 60
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) decodeInput() tea.Msg {
	root, err := parseEncoded(m.input.Value())
	if err != nil {
		return decodedMsg{err: err}
	}
	v, rest, err := decode(m.contract, m.typeName, root)
	if err != nil {
		return decodedMsg{err: err, dump: root.Dump()}
	}
	result := formatRecord(v)
	if !rest.Empty() {
		result += fmt.Sprintf("\n(unread: %d bits, %d refs)", rest.BitsLeft(), rest.RefsLeft())
	}
	return decodedMsg{result: result, dump: root.Dump()}
}

// parseEncoded accepts either hex or base64 input.
func parseEncoded(s string) (*cell.Cell, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty input")
	}
	if c, err := boc.FromHex(s); err == nil {
		return c, nil
	}
	return boc.FromBase64(s)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cell Decoder"))
	if m.contract != "" {
		b.WriteString(" ")
		b.WriteString(funcStyle.Render(m.contract))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectContract, stateSelectType:
		if m.state == stateSelectContract {
			b.WriteString("Select a contract:\n\n")
		} else {
			b.WriteString("Select a record type:\n\n")
		}
		for i, o := range m.options {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + o))
			} else {
				b.WriteString("  " + typeStyle.Render(o))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • esc back • q quit"))

	case stateInput:
		b.WriteString(fmt.Sprintf("Decoding %s\n\n", typeStyle.Render(m.typeName)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", typeStyle.Render(m.typeName)))
		if m.dump != "" {
			b.WriteString(m.dump)
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(contract string) error {
	p := tea.NewProgram(newInteractiveModel(contract), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
