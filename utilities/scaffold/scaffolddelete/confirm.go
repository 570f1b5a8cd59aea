package scaffolddelete

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Copysiter/O3GO-WA/stylesheet"
)

// confirm spins up a tiny TUI asking the user to type the confirmation phrase.
// Returns false on any other input or if the prompt is killed.
func confirm(singular, id string) (bool, error) {
	m, err := tea.NewProgram(newConfirmModel(singular, id)).Run()
	if err != nil {
		return false, err
	}
	final, ok := m.(confirmModel)
	if !ok {
		return false, errors.New("failed to cast confirm model")
	}
	return final.confirmed(), nil
}

type confirmModel struct {
	singular string
	id       string
	ti       textinput.Model
	killed   bool
	done     bool
}

func newConfirmModel(singular, id string) confirmModel {
	cm := confirmModel{
		singular: singular,
		id:       id,
		ti:       stylesheet.NewTI("", false),
	}
	cm.ti.Focus()
	return cm
}

// confirmed checks the (cleaned up) input against the confirmation phrase.
func (cm confirmModel) confirmed() bool {
	if cm.killed {
		return false
	}
	return strings.TrimSpace(strings.ToLower(cm.ti.Value())) == confirmPhrase
}

func (cm confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (cm confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cm.done {
		return cm, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			cm.killed = true
			cm.done = true
			return cm, tea.Quit
		case tea.KeyEnter:
			cm.done = true
			return cm, tea.Quit
		}
	}
	var cmd tea.Cmd
	cm.ti, cmd = cm.ti.Update(msg)
	return cm, cmd
}

func (cm confirmModel) View() string {
	if cm.done {
		return ""
	}
	return "Deleting " + cm.singular + " " + cm.id + ".\n" +
		stylesheet.Sheet.PrimaryText.Render("Type '"+confirmPhrase+"' to confirm deletion") +
		": " + cm.ti.View() + "\n"
}
