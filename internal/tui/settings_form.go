// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/charmbracelet/huh"
)

// editSettings loads the stored preferences, shows the edit form and writes
// the result back. Reports whether anything was persisted so the caller can
// signal the settings engine.
func (t *TUI) editSettings(ctx context.Context) (bool, error) {
	settings, err := t.loadSettings(ctx)
	if err != nil {
		return false, err
	}

	updated := settings
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Тема").
				Options(
					huh.NewOption("Системная", "system"),
					huh.NewOption("Светлая", "light"),
					huh.NewOption("Тёмная", "dark"),
				).
				Value(&updated.Theme),
			huh.NewConfirm().
				Title("Автоотправка ответа").
				Value(&updated.AutoSubmit),
			huh.NewConfirm().
				Title("Показывать таймер").
				Value(&updated.ShowTimer),
			huh.NewConfirm().
				Title("Подтверждение перед отправкой").
				Value(&updated.ConfirmBeforeSubmit),
			huh.NewConfirm().
				Title("Звуковые эффекты").
				Value(&updated.SoundEffects),
			huh.NewInput().
				Title("Gemini API ключ").
				Description("Хранится только на устройстве, в облако уходит в зашифрованном виде").
				EchoMode(huh.EchoModePassword).
				Value(&updated.GeminiAPIKey),
		).Title("НАСТРОЙКИ"),
	)
	if err := form.Run(); err != nil {
		if isUserAbort(err) {
			return false, nil
		}
		return false, err
	}

	if updated == settings {
		return false, nil
	}

	if err := t.saveSettings(ctx, updated); err != nil {
		return false, err
	}
	return true, nil
}

func (t *TUI) loadSettings(ctx context.Context) (models.AppSettings, error) {
	doc, err := t.services.LocalDocuments().GetDocument(ctx, models.CollectionSettings, models.SettingsDocumentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.DefaultSettings(), nil
		}
		return models.AppSettings{}, err
	}

	var settings models.AppSettings
	if err := json.Unmarshal(doc.Body, &settings); err != nil {
		return models.AppSettings{}, err
	}
	return settings, nil
}

func (t *TUI) saveSettings(ctx context.Context, settings models.AppSettings) error {
	body, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	doc := models.Document{
		ID:        models.SettingsDocumentID,
		Body:      body,
		UpdatedAt: time.Now().UTC(),
	}
	return t.services.LocalDocuments().SaveDocument(ctx, models.CollectionSettings, doc)
}
