// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-study-keeper/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrSyncBlocked):
		return "Запрос заблокирован. Если используете блокировщик рекламы, отключите его для этого приложения"
	case errors.Is(err, service.ErrSyncPermissionDenied):
		return "Облако отклонило доступ к данным. Выйдите и войдите снова"
	case errors.Is(err, service.ErrNotSignedIn):
		return "Требуется вход в аккаунт"
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
