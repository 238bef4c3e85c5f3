package form

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-contact-relay/pkg/relayclient"
)

func newTestModel() Model {
	return New(relayclient.New("http://localhost:0"))
}

func fillValid(m *Model) {
	m.inputs[fieldName].SetValue("Jane Doe")
	m.inputs[fieldEmail].SetValue("jane@example.com")
	m.inputs[fieldSubject].SetValue("Hello")
	m.inputs[fieldMessage].SetValue("A long enough message.")
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestValidateSingleEmptyField(t *testing.T) {
	for f := fieldName; f < fieldCount; f++ {
		t.Run(fieldLabels[f], func(t *testing.T) {
			m := newTestModel()
			fillValid(&m)
			m.inputs[f].SetValue("   ")

			assert.False(t, m.validate())
			assert.Len(t, m.errors, 1)
			assert.Equal(t, msgRequired, m.errors[f])
		})
	}
}

func TestValidateEmailShape(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.c", true},
		{"jane@example.com", true},
		{"jane..doe@example.com", true}, // consecutive dots are accepted
		{"no-at.example.com", false},
		{"no-dot@example", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			m := newTestModel()
			fillValid(&m)
			m.inputs[fieldEmail].SetValue(tt.email)

			ok := m.validate()
			if tt.valid {
				assert.True(t, ok)
			} else {
				assert.False(t, ok)
				assert.Equal(t, msgInvalidEmail, m.errors[fieldEmail])
			}
		})
	}
}

func TestValidateMessageLength(t *testing.T) {
	m := newTestModel()
	fillValid(&m)

	m.inputs[fieldMessage].SetValue("123456789") // 9 chars
	assert.False(t, m.validate())
	assert.Equal(t, msgTooShort, m.errors[fieldMessage])

	m.inputs[fieldMessage].SetValue("1234567890") // exactly 10
	assert.True(t, m.validate())

	m.inputs[fieldMessage].SetValue("  1234567890  ") // trimmed to 10
	assert.True(t, m.validate())
}

func TestEditingFieldClearsOnlyItsError(t *testing.T) {
	m := newTestModel()
	m.inputs[fieldEmail].SetValue("bad-email")
	assert.False(t, m.validate())
	require.Contains(t, m.errors, fieldName)
	require.Contains(t, m.errors, fieldEmail)

	m.focusField(fieldName)
	updated, _ := m.Update(keyMsg("J"))
	m = updated.(Model)

	assert.NotContains(t, m.errors, fieldName)
	assert.Contains(t, m.errors, fieldEmail, "other fields keep their errors")
	assert.Contains(t, m.errors, fieldSubject)
}

func TestSubmitInvalidMakesNoCall(t *testing.T) {
	m := newTestModel()
	cmd := m.submit()

	assert.Nil(t, cmd, "invalid form must not produce a network command")
	assert.Equal(t, statusIdle, m.status)
	assert.NotEmpty(t, m.errors)
}

func TestSubmitValidEntersLoading(t *testing.T) {
	m := newTestModel()
	fillValid(&m)

	cmd := m.submit()
	require.NotNil(t, cmd)
	assert.Equal(t, statusLoading, m.status)
	assert.Equal(t, msgSending, m.statusMessage)

	// A second trigger while in flight is a no-op
	assert.Nil(t, m.submit())
}

func TestSubmitSuccessResetsFields(t *testing.T) {
	m := newTestModel()
	fillValid(&m)
	m.status = statusLoading

	updated, _ := m.Update(submitResultMsg{id: "msg_123"})
	m = updated.(Model)

	assert.Equal(t, statusSuccess, m.status)
	assert.Equal(t, msgSuccess, m.statusMessage)
	for f := fieldName; f < fieldCount; f++ {
		assert.Empty(t, m.inputs[f].Value())
	}
}

func TestSubmitFailureKeepsFields(t *testing.T) {
	m := newTestModel()
	fillValid(&m)
	m.status = statusLoading

	updated, _ := m.Update(submitResultMsg{err: errors.New("relay returned status 500")})
	m = updated.(Model)

	assert.Equal(t, statusError, m.status)
	assert.Equal(t, msgFailure, m.statusMessage)
	assert.Equal(t, "Jane Doe", m.inputs[fieldName].Value(), "values survive a failed submission")
}

func TestEscDismissesBanner(t *testing.T) {
	m := newTestModel()
	m.status = statusError
	m.statusMessage = msgFailure
	m.inputs[fieldName].SetValue("Jane")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Equal(t, statusIdle, m.status)
	assert.Empty(t, m.statusMessage)
	assert.Equal(t, "Jane", m.inputs[fieldName].Value())
}

func TestEscWhileLoadingKeepsSubmissionGuard(t *testing.T) {
	m := newTestModel()
	fillValid(&m)
	require.NotNil(t, m.submit())
	require.Equal(t, statusLoading, m.status)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.Equal(t, statusLoading, m.status, "dismissal must not end the in-flight state")
	assert.Nil(t, m.submit(), "a second submission must stay disabled while one is outstanding")
}

func TestResultWithoutOutstandingSubmissionIsIgnored(t *testing.T) {
	m := newTestModel()
	m.inputs[fieldName].SetValue("New name")
	require.Equal(t, statusIdle, m.status)

	updated, _ := m.Update(submitResultMsg{id: "msg_late"})
	m = updated.(Model)

	assert.Equal(t, statusIdle, m.status)
	assert.Empty(t, m.statusMessage)
	assert.Equal(t, "New name", m.inputs[fieldName].Value(), "a stale result must not clear the form")

	m.status = statusError
	m.statusMessage = msgFailure
	updated, _ = m.Update(submitResultMsg{id: "msg_late"})
	m = updated.(Model)

	assert.Equal(t, statusError, m.status)
	assert.Equal(t, msgFailure, m.statusMessage)
}

func TestResetStatusIdempotent(t *testing.T) {
	m := newTestModel()
	fillValid(&m)
	m.validate()
	before := m.errors

	m.resetStatus()
	m.resetStatus()

	assert.Equal(t, statusIdle, m.status)
	assert.Empty(t, m.statusMessage)
	assert.Equal(t, before, m.errors)
}
