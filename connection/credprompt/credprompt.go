// Package credprompt is a tiny package for spinning up a standalone TUI to collect username and password.
// Use .Collect().
package credprompt

import (
	"errors"
	"fmt"

	"github.com/Copysiter/O3GO-WA/stylesheet"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrMustAuth is returned if the user kills the prompt before submitting credentials.
var ErrMustAuth = errors.New("you must authenticate to use wactl")

// Collect runs a tiny tea.Model that collects username and password.
// This is a blocking call; it only returns when the user enters a username and password or passes a killkey.
func Collect(initialUser string) (user, pass string, err error) {
	return collect(initialUser, nil)
}

// internal implementation of collect.
// Allows custom programs (likely programs with mocked input) for testing purposes.
// ! Outside of test packages, leave prog==nil.
func collect(initialUser string, prog *tea.Program) (user, pass string, err error) {
	p := prog
	if p == nil {
		p = tea.NewProgram(New(initialUser))
	}

	m, err := p.Run()
	if err != nil {
		return "", "", err
	}
	// pull input results
	finalCredM, ok := m.(credModel)
	if !ok {
		return "", "", errors.New("failed to cast credentials model")
	} else if finalCredM.killed {
		return "", "", ErrMustAuth
	}
	return finalCredM.UserTI.Value(), finalCredM.PassTI.Value(), nil
}

type credModel struct {
	userStartingValue string
	UserTI            textinput.Model
	PassTI            textinput.Model
	userSelected      bool
	killed            bool
	done              bool
}

// New creates a new credprompt, which satisfies the tea.Model interface.
// You probably want Collect(), instead; this is mostly used internally and for testing.
func New(initialUser string) credModel {
	c := credModel{userStartingValue: initialUser, userSelected: true}
	c.UserTI = textinput.New()
	c.UserTI.Prompt = stylesheet.TIPromptPrefix
	c.UserTI.Width = stylesheet.TIWidth
	c.UserTI.SetValue(c.userStartingValue)
	c.UserTI.Focus()
	c.PassTI = textinput.New()
	c.PassTI.Prompt = stylesheet.TIPromptPrefix
	c.PassTI.Width = stylesheet.TIWidth
	c.PassTI.EchoMode = textinput.EchoNone
	c.PassTI.Blur()
	return c
}

func (c credModel) Init() tea.Cmd {
	return textinput.Blink
}

func (c credModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if c.done { // do not accept more input once killed
		return c, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			c.killed = true
			c.done = true
			return c, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown: // swap
			return c.swap(), textinput.Blink
		case tea.KeyEnter: // submit or swap
			if c.userSelected {
				return c.swap(), textinput.Blink
			}
			c.done = true
			return c, tea.Quit
		}
	}
	var (
		usercmd tea.Cmd
		passcmd tea.Cmd
	)
	c.UserTI, usercmd = c.UserTI.Update(msg)
	c.PassTI, passcmd = c.PassTI.Update(msg)

	return c, tea.Batch(usercmd, passcmd)
}

func (c credModel) View() string {
	return fmt.Sprintf("%v%v\n%v%v\n\n",
		stylesheet.Prompt("username"), c.UserTI.View(),
		stylesheet.Prompt("password"), c.PassTI.View())
}

// select the next TI
func (c credModel) swap() credModel {
	c.userSelected = !c.userSelected
	if c.userSelected {
		c.UserTI.Focus()
		c.PassTI.Blur()
	} else {
		c.UserTI.Blur()
		c.PassTI.Focus()
	}

	return c
}
