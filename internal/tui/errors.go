// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov

package tui

import (
	"errors"

	"github.com/savrasovpm/go-pantry-keeper/internal/catalog"
	"github.com/savrasovpm/go-pantry-keeper/internal/service"
)

var fieldNames = map[string]string{
	"name":     "Название",
	"quantity": "Количество",
	"category": "Категория",
}

// humanizeError turns the client's sentinel errors into the messages shown
// in the UI. Unknown errors pass through verbatim.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var missing *catalog.MissingFieldError
	if errors.As(err, &missing) {
		if name, ok := fieldNames[missing.Field]; ok {
			return "Не заполнено обязательное поле: " + name
		}
		return "Не заполнено обязательное поле: " + missing.Field
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrServerUnavailable),
		errors.Is(err, catalog.ErrNetworkFailure):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, catalog.ErrUnauthorized):
		return "Сессия истекла, войдите заново"
	case errors.Is(err, catalog.ErrNotFound):
		return "Запись не найдена, обновите список"
	case errors.Is(err, catalog.ErrValidationFailed):
		return "Сервер отклонил данные: " + err.Error()
	case errors.Is(err, catalog.ErrServerError):
		return "Ошибка на сервере, попробуйте позже"
	}

	return err.Error()
}
