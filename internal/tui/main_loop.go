package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldSubject = iota
	formFieldReason
	formFieldStart
	formFieldEnd
	formFieldCount
)

type mainLoopModel struct {
	ctx       context.Context
	services  *service.ClientServices
	validator validators.Validator

	sync   service.SyncState
	idx    int
	status string
	errMsg string

	detail bool

	adding     bool
	formInputs []textinput.Model
	reasonArea textarea.Model
	formFocus  int
	formSaving bool

	profileOpen    bool
	profileEditing bool
	profileInputs  []textinput.Model
	profileFocus   int
	profileSaving  bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, validator validators.Validator) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		validator: validator,
		sync:      services.LeaveService.State(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadNext()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.sync = m.services.LeaveService.State()
		m.clampIdx()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	case refreshDoneMsg:
		m.sync = m.services.LeaveService.State()
		m.clampIdx()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Список обновлен"
		m.errMsg = ""
		return m, nil
	case submitDoneMsg:
		m.formSaving = false
		m.sync = m.services.LeaveService.State()
		m.clampIdx()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.adding = false
		m.status = "Заявка отправлена!"
		m.errMsg = ""
		return m, nil
	case profileSavedMsg:
		m.profileSaving = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.profileEditing = false
		m.status = "Профиль обновлен"
		m.errMsg = ""
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			return m.updateAddForm(msg)
		}
		if m.profileEditing {
			return m.updateProfileEdit(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.adding {
		return m.updateAddForm(msg)
	}
	if m.profileEditing {
		return m.updateProfileEdit(msg)
	}
	if m.profileOpen {
		return m.updateProfileView(keyMsg)
	}
	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

// ── list ─────────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.sync.Items)-1 {
			m.idx++
			return m, nil
		}
		// the cursor hit the bottom of what is loaded: pull the next page
		if m.sync.HasMore && !m.sync.Loading && !m.sync.Refreshing {
			return m, m.cmdLoadNext()
		}
	case "m":
		return m, m.cmdLoadNext()
	case "r":
		if m.sync.Refreshing {
			return m, nil
		}
		m.status = "Обновление..."
		m.errMsg = ""
		return m, m.cmdRefresh()
	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "Нет заявок"
			return m, nil
		}
		m.detail = true
	case "a":
		m.startAddForm()
		return m, textinput.Blink
	case "p":
		m.profileOpen = true
		return m, nil
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false
	case "c":
		if strings.TrimSpace(item.ID) == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboard.WriteAll(item.ID); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
			return m, nil
		}
		m.status = "Скопировано"
	}
	return m, nil
}

func (m *mainLoopModel) current() (models.LeaveRequest, bool) {
	if m.idx < 0 || m.idx >= len(m.sync.Items) {
		return models.LeaveRequest{}, false
	}
	return m.sync.Items[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if m.idx >= len(m.sync.Items) {
		m.idx = len(m.sync.Items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// ── add form ─────────────────────────────────────────────────────────────────

func (m *mainLoopModel) startAddForm() {
	subjectInput := textinput.New()
	subjectInput.Placeholder = "тема заявки"
	subjectInput.CharLimit = 120
	subjectInput.Width = 44
	subjectInput.Focus()

	startInput := textinput.New()
	startInput.Placeholder = uiDateLayout
	startInput.CharLimit = 10
	startInput.Width = 14

	endInput := textinput.New()
	endInput.Placeholder = uiDateLayout
	endInput.CharLimit = 10
	endInput.Width = 14

	reasonArea := textarea.New()
	reasonArea.Placeholder = "причина"
	reasonArea.CharLimit = 500
	reasonArea.SetWidth(46)
	reasonArea.SetHeight(3)

	m.adding = true
	m.formInputs = []textinput.Model{subjectInput, startInput, endInput}
	m.reasonArea = reasonArea
	m.formFocus = formFieldSubject
	m.formSaving = false
	m.errMsg = ""
	m.status = ""
}

func (m mainLoopModel) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.adding = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.formFocusMove(1)
			return m, nil
		case "shift+tab":
			m.formFocusMove(-1)
			return m, nil
		case "enter":
			// the textarea consumes enter for line breaks
			if m.formFocus == formFieldReason {
				break
			}
			if m.formSaving {
				return m, nil
			}

			form, err := m.buildForm()
			if err != nil {
				m.errMsg = humanizeError(err)
				return m, nil
			}

			m.errMsg = ""
			m.formSaving = true
			return m, m.cmdSubmit(form)
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case formFieldReason:
		m.reasonArea, cmd = m.reasonArea.Update(msg)
	case formFieldSubject:
		m.formInputs[0], cmd = m.formInputs[0].Update(msg)
	case formFieldStart:
		m.formInputs[1], cmd = m.formInputs[1].Update(msg)
	case formFieldEnd:
		m.formInputs[2], cmd = m.formInputs[2].Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) formFocusMove(delta int) {
	m.blurFormField(m.formFocus)
	m.formFocus = (m.formFocus + delta + formFieldCount) % formFieldCount
	m.focusFormField(m.formFocus)
}

func (m *mainLoopModel) focusFormField(field int) {
	switch field {
	case formFieldReason:
		m.reasonArea.Focus()
	case formFieldSubject:
		m.formInputs[0].Focus()
	case formFieldStart:
		m.formInputs[1].Focus()
	case formFieldEnd:
		m.formInputs[2].Focus()
	}
}

func (m *mainLoopModel) blurFormField(field int) {
	switch field {
	case formFieldReason:
		m.reasonArea.Blur()
	case formFieldSubject:
		m.formInputs[0].Blur()
	case formFieldStart:
		m.formInputs[1].Blur()
	case formFieldEnd:
		m.formInputs[2].Blur()
	}
}

// buildForm assembles and validates the leave request form from the input
// widgets. Dates are parsed from the YYYY-MM-DD inputs; parse failures are
// reported as an empty date range.
func (m *mainLoopModel) buildForm() (models.LeaveRequestForm, error) {
	form := models.LeaveRequestForm{
		Subject: strings.TrimSpace(m.formInputs[0].Value()),
		Reason:  strings.TrimSpace(m.reasonArea.Value()),
	}

	if start, err := time.Parse(uiDateLayout, strings.TrimSpace(m.formInputs[1].Value())); err == nil {
		form.DateRange.Start = start
	}
	if end, err := time.Parse(uiDateLayout, strings.TrimSpace(m.formInputs[2].Value())); err == nil {
		form.DateRange.End = end
	}

	if err := m.validator.Validate(m.ctx, form); err != nil {
		return models.LeaveRequestForm{}, err
	}
	return form, nil
}

// ── profile ──────────────────────────────────────────────────────────────────

func (m mainLoopModel) updateProfileView(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q", "p":
		m.profileOpen = false
	case "e":
		m.startProfileEdit()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *mainLoopModel) startProfileEdit() {
	identity := m.services.SessionService.State().Identity

	usernameInput := textinput.New()
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.SetValue(identity.Username)
	usernameInput.Focus()

	phoneInput := textinput.New()
	phoneInput.Placeholder = "+7 900 123-45-67"
	phoneInput.CharLimit = 24
	phoneInput.Width = 40
	phoneInput.SetValue(identity.Phone)

	dobInput := textinput.New()
	dobInput.Placeholder = uiDateLayout
	dobInput.CharLimit = 10
	dobInput.Width = 14
	dobInput.SetValue(identity.DOB)

	m.profileEditing = true
	m.profileInputs = []textinput.Model{usernameInput, phoneInput, dobInput}
	m.profileFocus = 0
	m.profileSaving = false
	m.errMsg = ""
	m.status = ""
}

func (m mainLoopModel) updateProfileEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.profileEditing = false
			m.errMsg = ""
			return m, nil
		case "tab":
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus + 1) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case "shift+tab":
			m.profileInputs[m.profileFocus].Blur()
			m.profileFocus = (m.profileFocus - 1 + len(m.profileInputs)) % len(m.profileInputs)
			m.profileInputs[m.profileFocus].Focus()
			return m, nil
		case "enter":
			if m.profileSaving {
				return m, nil
			}

			identity := m.services.SessionService.State().Identity
			identity.Username = strings.TrimSpace(m.profileInputs[0].Value())
			identity.Phone = strings.TrimSpace(m.profileInputs[1].Value())
			identity.DOB = strings.TrimSpace(m.profileInputs[2].Value())

			if err := m.validator.Validate(m.ctx, identity); err != nil {
				m.errMsg = humanizeError(err)
				return m, nil
			}

			m.errMsg = ""
			m.profileSaving = true
			return m, m.cmdSaveProfile(identity)
		}
	}

	var cmd tea.Cmd
	m.profileInputs[m.profileFocus], cmd = m.profileInputs[m.profileFocus].Update(msg)
	return m, cmd
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadNext() tea.Cmd {
	ctx := m.ctx
	leaves := m.services.LeaveService

	return func() tea.Msg {
		return pageLoadedMsg{err: leaves.LoadNext(ctx)}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	leaves := m.services.LeaveService

	return func() tea.Msg {
		return refreshDoneMsg{err: leaves.Refresh(ctx)}
	}
}

func (m mainLoopModel) cmdSubmit(form models.LeaveRequestForm) tea.Cmd {
	ctx := m.ctx
	leaves := m.services.LeaveService

	return func() tea.Msg {
		return submitDoneMsg{err: leaves.Submit(ctx, form)}
	}
}

func (m mainLoopModel) cmdSaveProfile(identity models.User) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService

	return func() tea.Msg {
		return profileSavedMsg{err: sessions.UpdateProfile(ctx, identity)}
	}
}
