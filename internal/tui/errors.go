// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
)

// humanizeError converts transport and validation failures into a short
// message suitable for the status line. Server-provided messages pass through
// as-is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validators.ErrEmptySubject):
		return "Укажите тему заявки"
	case errors.Is(err, validators.ErrEmptyReason):
		return "Укажите причину отпуска"
	case errors.Is(err, validators.ErrEmptyDateRange):
		return "Укажите даты в формате ГГГГ-ММ-ДД"
	case errors.Is(err, validators.ErrEndBeforeStart):
		return "Дата окончания раньше даты начала"
	case errors.Is(err, validators.ErrEmptyEmail), errors.Is(err, validators.ErrInvalidEmail):
		return "Укажите корректный email"
	case errors.Is(err, validators.ErrEmptyPassword):
		return "Укажите пароль"
	case errors.Is(err, validators.ErrEmptyUsername):
		return "Укажите имя пользователя"
	case errors.Is(err, validators.ErrInvalidDOB):
		return "Дата рождения должна быть в формате ГГГГ-ММ-ДД"
	case errors.Is(err, validators.ErrInvalidPhone):
		return "Укажите корректный телефон"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Неверные учетные данные или сессия истекла: " + adapter.ServerMessage(err)
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
