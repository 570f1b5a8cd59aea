package scaffoldcreate

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Copysiter/O3GO-WA/stylesheet"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const minFieldWidth uint = 25

// ErrCreateAborted is returned if the user kills the prompt before submitting.
var ErrCreateAborted = errors.New("creation aborted")

// promptValues spins up a standalone TUI to fill in the fields, seeded with the values
// already collected from flags. Blocks until the user submits or aborts.
func promptValues(fields Config, seed Values) (Values, error) {
	m, err := tea.NewProgram(newPromptModel(fields, seed)).Run()
	if err != nil {
		return nil, err
	}
	final, ok := m.(promptModel)
	if !ok {
		return nil, errors.New("failed to cast prompt model")
	}
	if final.killed {
		return nil, ErrCreateAborted
	}
	return final.values(), nil
}

// interactive model that builds out inputs based on the read-only Config supplied on creation.
type promptModel struct {
	fields Config // RO configuration provided by the caller

	orderedTIs         []scaffold.KeyedTI // ordered array of map keys, based on Field.Order
	selected           uint               // currently focused ti (in key order index)
	longestFieldLength int                // the longest field name of the TIs

	inputErr string // the reason inputs are invalid

	killed bool
	done   bool
}

func newPromptModel(fields Config, seed Values) promptModel {
	p := promptModel{
		fields:     fields,
		orderedTIs: make([]scaffold.KeyedTI, 0, len(fields)),
	}

	for k, f := range fields {
		kti := scaffold.KeyedTI{
			Key:        k,
			FieldTitle: f.Title,
			Required:   f.Required,
		}
		// if a custom func was not given, use the default generation
		if f.CustomTIFuncInit == nil {
			kti.TI = stylesheet.NewTI(f.DefaultValue, !f.Required)
		} else {
			kti.TI = f.CustomTIFuncInit()
		}
		// carry over any value already given via flag
		if v, found := seed[k]; found && v != "" {
			kti.TI.SetValue(v)
		}

		p.orderedTIs = append(p.orderedTIs, kti)

		// note the longest Title for later formatting
		if w := lipgloss.Width(f.Title); p.longestFieldLength < w {
			p.longestFieldLength = w
		}
	}
	// buffer the field length
	if p.longestFieldLength < int(minFieldWidth) {
		p.longestFieldLength = int(minFieldWidth)
	}
	// sort keys from highest order to lowest order
	slices.SortFunc(p.orderedTIs, func(a, b scaffold.KeyedTI) int {
		return fields[b.Key].Order - fields[a.Key].Order
	})

	if len(p.orderedTIs) > 0 {
		p.orderedTIs[0].TI.Focus()
	}

	return p
}

// values maps the current TI contents back onto their field keys.
func (p promptModel) values() Values {
	vals := make(Values, len(p.orderedTIs))
	for _, kti := range p.orderedTIs {
		vals[kti.Key] = strings.TrimSpace(kti.TI.Value())
	}
	return vals
}

// missingRequireds lists the titles of required fields that are still empty.
func (p promptModel) missingRequireds() []string {
	var missing []string
	for _, kti := range p.orderedTIs {
		if kti.Required && strings.TrimSpace(kti.TI.Value()) == "" {
			missing = append(missing, kti.FieldTitle)
		}
	}
	return missing
}

func (p promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (p promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.done {
		return p, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			p.killed = true
			p.done = true
			return p, tea.Quit
		case tea.KeyUp, tea.KeyShiftTab:
			return p.focus(int(p.selected) - 1), textinput.Blink
		case tea.KeyDown, tea.KeyTab:
			return p.focus(int(p.selected) + 1), textinput.Blink
		case tea.KeyEnter:
			// enter on the last field attempts a submit; elsewhere it advances
			if p.selected < uint(len(p.orderedTIs)-1) {
				return p.focus(int(p.selected) + 1), textinput.Blink
			}
			if missing := p.missingRequireds(); missing != nil {
				p.inputErr = fmt.Sprintf(errMissingRequiredFlags, missing)
				return p, nil
			}
			p.done = true
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.orderedTIs[p.selected].TI, cmd = p.orderedTIs[p.selected].TI.Update(msg)
	return p, cmd
}

// focus blurs the current TI and focuses the one at idx, wrapping on either end.
func (p promptModel) focus(idx int) promptModel {
	count := len(p.orderedTIs)
	if count == 0 {
		return p
	}
	if idx < 0 {
		idx = count - 1
	} else if idx >= count {
		idx = 0
	}
	p.orderedTIs[p.selected].TI.Blur()
	p.selected = uint(idx)
	p.orderedTIs[p.selected].TI.Focus()
	p.inputErr = ""
	return p
}

func (p promptModel) View() string {
	if p.done {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(scaffold.ViewKTIs(uint(p.longestFieldLength)+3, p.orderedTIs, p.selected))
	sb.WriteString("\n")
	if p.inputErr != "" {
		sb.WriteString(stylesheet.Sheet.ErrText.Render(p.inputErr) + "\n")
	}
	sb.WriteString(stylesheet.Sheet.DisabledText.Render(
		stylesheet.UpDown + " move • enter on the last field submits • esc abort"))
	return sb.String()
}
