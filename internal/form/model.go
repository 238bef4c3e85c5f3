package form

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"go-contact-relay/pkg/relayclient"
	"go-contact-relay/pkg/validation"
)

type field int

const (
	fieldName field = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldName:    "Name",
	fieldEmail:   "Email",
	fieldSubject: "Subject",
	fieldMessage: "Message",
}

type status int

const (
	statusIdle status = iota
	statusLoading
	statusSuccess
	statusError
)

// User-facing text. Single locale, no externalization.
const (
	msgRequired     = "This field is required"
	msgInvalidEmail = "Please enter a valid email address"
	msgTooShort     = "Message must be at least 10 characters"
	msgSending      = "Sending your message..."
	msgSuccess      = "Thanks! Your message has been sent."
	msgFailure      = "Something went wrong. Please try again later."
)

type submitResultMsg struct {
	id  string
	err error
}

// Model is the contact form controller: it owns the field state, the
// per-field validation errors and the submission status machine.
type Model struct {
	client *relayclient.Client

	inputs  [fieldCount]textinput.Model
	focused field
	errors  map[field]string

	status        status
	statusMessage string

	spinner spinner.Model
	width   int
}

func New(client *relayclient.Client) Model {
	var inputs [fieldCount]textinput.Model

	nameInput := textinput.New()
	nameInput.Placeholder = "Your name"
	nameInput.CharLimit = 100
	nameInput.Focus()
	inputs[fieldName] = nameInput

	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.CharLimit = 100
	inputs[fieldEmail] = emailInput

	subjectInput := textinput.New()
	subjectInput.Placeholder = "What is this about?"
	subjectInput.CharLimit = 150
	inputs[fieldSubject] = subjectInput

	messageInput := textinput.New()
	messageInput.Placeholder = "Your message (at least 10 characters)"
	messageInput.CharLimit = 2000
	inputs[fieldMessage] = messageInput

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		client:  client,
		inputs:  inputs,
		errors:  make(map[field]string),
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.status != statusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case submitResultMsg:
		// Only an outstanding submission may change the status; anything
		// else is a stale result and must not touch the form.
		if m.status != statusLoading {
			return m, nil
		}
		if msg.err != nil {
			// Diagnostics only; the user sees the fixed banner
			log.Printf("submit failed: %v", msg.err)
			m.status = statusError
			m.statusMessage = msgFailure
			return m, nil
		}
		m.status = statusSuccess
		m.statusMessage = msgSuccess
		m.resetFields()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			switch m.status {
			case statusIdle:
				return m, tea.Quit
			case statusLoading:
				// Dismissal cannot cancel the in-flight call, and dropping
				// to idle here would re-enable the submit trigger
				return m, nil
			default:
				m.resetStatus()
				return m, nil
			}

		case "tab", "down":
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case "enter":
			if m.focused < fieldMessage {
				m.focusField(m.focused + 1)
				return m, nil
			}
			cmd := m.submit()
			return m, cmd

		case "ctrl+s":
			cmd := m.submit()
			return m, cmd
		}

		return m.updateField(msg)
	}

	return m, nil
}

// updateField routes a keystroke to the focused input. Editing a field that
// currently has a recorded error clears that error immediately; the other
// fields' errors are untouched.
func (m Model) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focused].Value()

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	if m.inputs[m.focused].Value() != before {
		delete(m.errors, m.focused)
	}

	return m, cmd
}

// validate applies every field rule and rebuilds the full error map.
// All fields are checked; validation never short-circuits.
func (m *Model) validate() bool {
	errs := make(map[field]string)

	if strings.TrimSpace(m.inputs[fieldName].Value()) == "" {
		errs[fieldName] = msgRequired
	}

	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	switch {
	case email == "":
		errs[fieldEmail] = msgRequired
	case !validation.ValidEmail(email):
		errs[fieldEmail] = msgInvalidEmail
	}

	if strings.TrimSpace(m.inputs[fieldSubject].Value()) == "" {
		errs[fieldSubject] = msgRequired
	}

	message := strings.TrimSpace(m.inputs[fieldMessage].Value())
	switch {
	case message == "":
		errs[fieldMessage] = msgRequired
	case utf8.RuneCountInString(message) < validation.MinMessageLength:
		errs[fieldMessage] = msgTooShort
	}

	m.errors = errs
	return len(errs) == 0
}

// submit runs validation and, if the form is clean, fires the relay call.
// A submission already in flight disables the trigger entirely.
func (m *Model) submit() tea.Cmd {
	if m.status == statusLoading {
		return nil
	}
	if !m.validate() {
		return nil
	}

	m.status = statusLoading
	m.statusMessage = msgSending

	sub := relayclient.Submission{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Subject: m.inputs[fieldSubject].Value(),
		Message: m.inputs[fieldMessage].Value(),
	}
	client := m.client

	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		resp, err := client.Submit(context.Background(), sub)
		if err != nil {
			return submitResultMsg{err: err}
		}
		return submitResultMsg{id: resp.ID}
	})
}

// resetStatus dismisses a success or error banner without touching field
// values or field errors. Calling it while idle changes nothing.
func (m *Model) resetStatus() {
	m.status = statusIdle
	m.statusMessage = ""
}

func (m *Model) resetFields() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.errors = make(map[field]string)
	m.focusField(fieldName)
}

func (m *Model) focusField(f field) {
	m.inputs[m.focused].Blur()
	m.focused = f
	m.inputs[m.focused].Focus()
}
