package tui

import (
	"fmt"
	"strings"
)

func (m mainLoopModel) View() string {
	switch {
	case m.adding:
		return m.viewAddForm()
	case m.profileEditing:
		return m.viewProfileEdit()
	case m.profileOpen:
		return m.viewProfile()
	case m.detail:
		return m.viewDetail()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if len(m.sync.Items) == 0 {
		switch {
		case m.sync.Loading || m.sync.Refreshing:
			b.WriteString("Загрузка...\n")
		case m.sync.LastError != nil:
			b.WriteString("Не удалось загрузить список\n")
		default:
			b.WriteString("Заявок пока нет. Нажмите 'a', чтобы создать первую.\n")
		}
	}

	for i, item := range m.sync.Items {
		cursor := "  "
		line := fmt.Sprintf("%-34s %s — %s  %s",
			fitText(item.Subject, 32),
			formatDate(item.DateRange.Start),
			formatDate(item.DateRange.End),
			statusBadge(item.Status),
		)
		if i == m.idx {
			cursor = "> "
			line = cursorStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.sync.Loading:
		b.WriteString(statusStyle.Render("Загрузка следующей страницы..."))
	case m.sync.Refreshing:
		b.WriteString(statusStyle.Render("Обновление..."))
	case m.sync.HasMore:
		b.WriteString(statusStyle.Render("Есть еще заявки: ↓ или m"))
	default:
		b.WriteString(statusStyle.Render(fmt.Sprintf("Всего заявок: %d", len(m.sync.Items))))
	}

	m.appendStatusLines(&b)

	return renderPage(
		"МОИ ЗАЯВКИ НА ОТПУСК",
		strings.TrimRight(b.String(), "\n"),
		"enter: детали │ a: новая │ r: обновить │ p: профиль │ l: выйти из аккаунта │ q: выход",
	)
}

func (m mainLoopModel) viewDetail() string {
	item, ok := m.current()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Тема    : %s\n", valueOrDash(item.Subject)))
	b.WriteString(fmt.Sprintf("Статус  : %s\n", statusBadge(item.Status)))
	b.WriteString(fmt.Sprintf("Начало  : %s\n", formatDate(item.DateRange.Start)))
	b.WriteString(fmt.Sprintf("Конец   : %s\n", formatDate(item.DateRange.End)))
	b.WriteString(fmt.Sprintf("ID      : %s\n", valueOrDash(item.ID)))
	b.WriteString("\nПричина:\n")
	b.WriteString(valueOrDash(item.Reason))
	b.WriteString("\n")

	m.appendStatusLines(&b)

	return renderPage("ЗАЯВКА", strings.TrimRight(b.String(), "\n"), "c: копировать ID │ esc: назад")
}

func (m mainLoopModel) viewAddForm() string {
	var b strings.Builder
	b.WriteString("Тема    │ [")
	b.WriteString(m.formInputs[0].View())
	b.WriteString("]\n\n")
	b.WriteString("Причина:\n")
	b.WriteString(m.reasonArea.View())
	b.WriteString("\n\n")
	b.WriteString("Начало  │ [")
	b.WriteString(m.formInputs[1].View())
	b.WriteString("]   Конец │ [")
	b.WriteString(m.formInputs[2].View())
	b.WriteString("]\n")

	if m.formSaving {
		b.WriteString("\n[Отправка...]\n")
	} else {
		b.WriteString("\n[Отправить]\n")
	}

	m.appendStatusLines(&b)

	return renderPage("НОВАЯ ЗАЯВКА", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: отправить │ esc: отмена")
}

func (m mainLoopModel) viewProfile() string {
	identity := m.services.SessionService.State().Identity

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Имя          : %s\n", valueOrDash(identity.Username)))
	b.WriteString(fmt.Sprintf("Email        : %s\n", valueOrDash(identity.Email)))
	b.WriteString(fmt.Sprintf("Телефон      : %s\n", valueOrDash(identity.Phone)))
	b.WriteString(fmt.Sprintf("Дата рождения: %s\n", valueOrDash(identity.DOB)))

	m.appendStatusLines(&b)

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "e: редактировать │ esc: назад")
}

func (m mainLoopModel) viewProfileEdit() string {
	var b strings.Builder
	b.WriteString("Имя           │ [")
	b.WriteString(m.profileInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Телефон       │ [")
	b.WriteString(m.profileInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Дата рождения │ [")
	b.WriteString(m.profileInputs[2].View())
	b.WriteString("]\n")

	if m.profileSaving {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	m.appendStatusLines(&b)

	return renderPage("РЕДАКТИРОВАНИЕ ПРОФИЛЯ", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: сохранить │ esc: отмена")
}

func (m mainLoopModel) appendStatusLines(b *strings.Builder) {
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}
}
