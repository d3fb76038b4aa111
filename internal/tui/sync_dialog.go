// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-study-keeper/internal/service"
	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/charmbracelet/huh"
)

// actionLabels maps each bulk action to its menu entry. The order of
// decision.Actions is preserved in the rendered dialog.
var actionLabels = map[models.SyncAction]string{
	models.SyncActionMerge:    "Объединить (облачная копия имеет приоритет)",
	models.SyncActionDownload: "Скачать из облака (заменить локальные данные)",
	models.SyncActionUpload:   "Загрузить в облако (заменить облачные данные)",
	models.SyncActionCancel:   "Пропустить синхронизацию",
}

// SyncDecisionDialog shows the one-time reconciliation choice for a freshly
// signed-in session. When the classification auto-resolved (no actions
// offered) the dialog is skipped and the zero action is returned.
func (t *TUI) SyncDecisionDialog(decision service.SyncDecision) (models.SyncAction, bool, error) {
	options := actionOptions(decision)
	if len(options) == 0 {
		return "", false, nil
	}

	var chosen models.SyncAction
	err := huh.NewSelect[models.SyncAction]().
		Title("СИНХРОНИЗАЦИЯ").
		Description(stateSummary(decision.State)).
		Options(options...).
		Value(&chosen).
		Run()
	if err != nil {
		if isUserAbort(err) {
			// закрытие диалога равнозначно отказу от синхронизации
			return models.SyncActionCancel, true, nil
		}
		return "", false, err
	}

	return chosen, true, nil
}

func actionOptions(decision service.SyncDecision) []huh.Option[models.SyncAction] {
	options := make([]huh.Option[models.SyncAction], 0, len(decision.Actions))
	for _, action := range decision.Actions {
		label, known := actionLabels[action]
		if !known {
			continue
		}
		options = append(options, huh.NewOption(label, action))
	}
	return options
}

func stateSummary(state service.SyncState) string {
	switch {
	case state.IsNewUser && state.HasLocalData:
		return "На этом устройстве есть данные, но аккаунт новый. Что с ними сделать?"
	case state.HasLocalData && state.HasCloudData:
		return "Данные есть и на устройстве, и в облаке. Как их согласовать?"
	case state.HasCloudData:
		return "В облаке найдены данные для этого аккаунта."
	default:
		return "Выберите действие для первого входа."
	}
}
