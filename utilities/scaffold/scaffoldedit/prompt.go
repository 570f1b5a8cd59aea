package scaffoldedit

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/Copysiter/O3GO-WA/stylesheet"
	"github.com/Copysiter/O3GO-WA/utilities/scaffold"
)

const minFieldWidth uint = 25

// ErrEditAborted is returned if the user kills the prompt before submitting.
var ErrEditAborted = errors.New("edit aborted")

// promptValues spins up a standalone TUI with one TI per field, each seeded with
// the record's current value. Blocks until the user submits or aborts.
func promptValues(cfg Config, seed map[string]string) (map[string]string, error) {
	m, err := tea.NewProgram(newEditModel(cfg, seed)).Run()
	if err != nil {
		return nil, err
	}
	final, ok := m.(editModel)
	if !ok {
		return nil, errors.New("failed to cast edit model")
	}
	if final.killed {
		return nil, ErrEditAborted
	}
	return final.values(), nil
}

// interactive model that builds out inputs based on the read-only Config supplied on creation.
type editModel struct {
	cfg Config // RO configuration provided by the caller

	orderedTIs         []scaffold.KeyedTI // ordered array of map keys, based on Field.Order
	selected           uint               // currently focused ti (in key order index)
	longestFieldLength int                // the longest field name of the TIs

	inputErr string // the reason inputs are invalid

	killed bool
	done   bool
}

func newEditModel(cfg Config, seed map[string]string) editModel {
	em := editModel{
		cfg:        cfg,
		orderedTIs: make([]scaffold.KeyedTI, 0, len(cfg)),
	}

	for k, f := range cfg {
		kti := scaffold.KeyedTI{
			Key:        k,
			FieldTitle: f.Title,
			Required:   f.Required,
		}
		if f.CustomTIFuncInit == nil {
			kti.TI = stylesheet.NewTI("", !f.Required)
		} else {
			kti.TI = f.CustomTIFuncInit()
		}
		kti.TI.SetValue(seed[k])

		em.orderedTIs = append(em.orderedTIs, kti)

		if w := lipgloss.Width(f.Title); em.longestFieldLength < w {
			em.longestFieldLength = w
		}
	}
	if em.longestFieldLength < int(minFieldWidth) {
		em.longestFieldLength = int(minFieldWidth)
	}
	// sort keys from highest order to lowest order
	slices.SortFunc(em.orderedTIs, func(a, b scaffold.KeyedTI) int {
		return cfg[b.Key].Order - cfg[a.Key].Order
	})

	if len(em.orderedTIs) > 0 {
		em.orderedTIs[0].TI.Focus()
	}

	return em
}

// values maps the current TI contents back onto their field keys.
func (em editModel) values() map[string]string {
	vals := make(map[string]string, len(em.orderedTIs))
	for _, kti := range em.orderedTIs {
		vals[kti.Key] = strings.TrimSpace(kti.TI.Value())
	}
	return vals
}

// missingRequireds lists the titles of required fields that were emptied out.
func (em editModel) missingRequireds() []string {
	var missing []string
	for _, kti := range em.orderedTIs {
		if kti.Required && strings.TrimSpace(kti.TI.Value()) == "" {
			missing = append(missing, kti.FieldTitle)
		}
	}
	return missing
}

func (em editModel) Init() tea.Cmd {
	return textinput.Blink
}

func (em editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if em.done {
		return em, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			em.killed = true
			em.done = true
			return em, tea.Quit
		case tea.KeyUp, tea.KeyShiftTab:
			return em.focus(int(em.selected) - 1), textinput.Blink
		case tea.KeyDown, tea.KeyTab:
			return em.focus(int(em.selected) + 1), textinput.Blink
		case tea.KeyEnter:
			// enter on the last field attempts a submit; elsewhere it advances
			if em.selected < uint(len(em.orderedTIs)-1) {
				return em.focus(int(em.selected) + 1), textinput.Blink
			}
			if missing := em.missingRequireds(); missing != nil {
				em.inputErr = fmt.Sprintf("required fields %v cannot be emptied", missing)
				return em, nil
			}
			em.done = true
			return em, tea.Quit
		}
	}

	var cmd tea.Cmd
	em.orderedTIs[em.selected].TI, cmd = em.orderedTIs[em.selected].TI.Update(msg)
	return em, cmd
}

// focus blurs the current TI and focuses the one at idx, wrapping on either end.
func (em editModel) focus(idx int) editModel {
	count := len(em.orderedTIs)
	if count == 0 {
		return em
	}
	if idx < 0 {
		idx = count - 1
	} else if idx >= count {
		idx = 0
	}
	em.orderedTIs[em.selected].TI.Blur()
	em.selected = uint(idx)
	em.orderedTIs[em.selected].TI.Focus()
	em.inputErr = ""
	return em
}

func (em editModel) View() string {
	if em.done {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(scaffold.ViewKTIs(uint(em.longestFieldLength)+3, em.orderedTIs, em.selected))
	sb.WriteString("\n")
	if em.inputErr != "" {
		sb.WriteString(stylesheet.Sheet.ErrText.Render(em.inputErr) + "\n")
	}
	sb.WriteString(stylesheet.Sheet.DisabledText.Render(
		stylesheet.UpDown + " move • enter on the last field submits • esc abort"))
	return sb.String()
}
