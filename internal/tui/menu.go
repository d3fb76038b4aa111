// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-keeper/internal/service"
	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/charmbracelet/huh"
)

const (
	menuQuizzes    = "quizzes"
	menuSessions   = "sessions"
	menuFlashcards = "flashcards"
	menuSettings   = "settings"
	menuLogout     = "logout"
	menuQuit       = "quit"
)

// MainLoop runs the signed-in menu until the user logs out or quits.
// Returns logout=true when the caller should restart the sign-in flow.
func (t *TUI) MainLoop(ctx context.Context, session *service.SyncSession) (logout bool, err error) {
	for {
		var choice string
		err := huh.NewSelect[string]().
			Title("ГЛАВНОЕ МЕНЮ").
			Options(
				huh.NewOption("Квизы", menuQuizzes),
				huh.NewOption("Сессии квизов", menuSessions),
				huh.NewOption("Колоды карточек", menuFlashcards),
				huh.NewOption("Настройки", menuSettings),
				huh.NewOption("Сменить аккаунт", menuLogout),
				huh.NewOption("Выход", menuQuit),
			).
			Value(&choice).
			Run()
		if err != nil {
			if isUserAbort(err) {
				return false, nil
			}
			return false, err
		}

		switch choice {
		case menuQuizzes:
			err = t.quizzesScreen(ctx, session)
		case menuSessions:
			err = t.sessionsScreen(ctx)
		case menuFlashcards:
			err = t.flashcardsScreen(ctx)
		case menuSettings:
			var changed bool
			changed, err = t.editSettings(ctx)
			if changed {
				session.NotifyLocalChange(ctx, models.CollectionSettings)
			}
		case menuLogout:
			return true, nil
		case menuQuit:
			return false, nil
		}

		if err != nil {
			fmt.Println("Ошибка: " + humanizeServerUnavailableError(err))
		}
	}
}

// ── quizzes ─────────────────────────────────────────────────────────────────

func (t *TUI) quizzesScreen(ctx context.Context, session *service.SyncSession) error {
	for {
		docs, err := t.services.LocalDocuments().GetCollection(ctx, models.CollectionQuizzes)
		if err != nil {
			return err
		}
		quizzes, err := service.DecodeRecords[models.Quiz](docs)
		if err != nil {
			return err
		}
		// the seed quiz lives outside the stored collection
		quizzes = service.WithDefaultQuiz(quizzes)

		options := make([]huh.Option[string], 0, len(quizzes)+1)
		for _, quiz := range quizzes {
			options = append(options, huh.NewOption(quizLine(quiz), quiz.ID))
		}
		options = append(options, huh.NewOption("← Назад", ""))

		var quizID string
		err = huh.NewSelect[string]().
			Title("КВИЗЫ").
			Options(options...).
			Value(&quizID).
			Run()
		if err != nil {
			if isUserAbort(err) {
				return nil
			}
			return err
		}
		if quizID == "" {
			return nil
		}

		if err := t.quizActions(ctx, session, quizID, quizzes); err != nil {
			return err
		}
	}
}

func (t *TUI) quizActions(ctx context.Context, session *service.SyncSession, quizID string, quizzes []models.Quiz) error {
	var quiz models.Quiz
	for _, q := range quizzes {
		if q.ID == quizID {
			quiz = q
			break
		}
	}

	var action string
	err := huh.NewSelect[string]().
		Title(quiz.Name).
		Options(
			huh.NewOption("Просмотр", "view"),
			huh.NewOption("Переименовать", "rename"),
			huh.NewOption("Удалить", "delete"),
			huh.NewOption("← Назад", ""),
		).
		Value(&action).
		Run()
	if err != nil {
		if isUserAbort(err) {
			return nil
		}
		return err
	}

	switch action {
	case "view":
		fmt.Println(quizDetail(quiz))
		return nil

	case "rename":
		if quiz.ID == models.DefaultQuizID || quiz.IsDefault {
			fmt.Println("Встроенный квиз изменить нельзя")
			return nil
		}

		name := quiz.Name
		err := huh.NewInput().
			Title("Новое название").
			Validate(requireNonEmpty("название")).
			Value(&name).
			Run()
		if err != nil {
			if isUserAbort(err) {
				return nil
			}
			return err
		}

		quiz.Name = name
		quiz.UpdatedAt = time.Now().UTC()
		docs, err := service.EncodeRecords([]models.Quiz{quiz})
		if err != nil {
			return err
		}
		if err := t.services.LocalDocuments().SaveDocument(ctx, models.CollectionQuizzes, docs[0]); err != nil {
			return err
		}
		session.NotifyLocalChange(ctx, models.CollectionQuizzes)
		return nil

	case "delete":
		if quiz.ID == models.DefaultQuizID || quiz.IsDefault {
			fmt.Println("Встроенный квиз удалить нельзя")
			return nil
		}

		var confirmed bool
		err := huh.NewConfirm().
			Title("Удалить квиз «" + quiz.Name + "»?").
			Value(&confirmed).
			Run()
		if err != nil || !confirmed {
			if err != nil && !isUserAbort(err) {
				return err
			}
			return nil
		}

		if err := t.services.LocalDocuments().DeleteDocument(ctx, models.CollectionQuizzes, quiz.ID); err != nil {
			return err
		}
		session.NotifyLocalChange(ctx, models.CollectionQuizzes)
		return nil
	}

	return nil
}

// ── read-only listings ──────────────────────────────────────────────────────

func (t *TUI) sessionsScreen(ctx context.Context) error {
	docs, err := t.services.LocalDocuments().GetCollection(ctx, models.CollectionSessions)
	if err != nil {
		return err
	}
	sessions, err := service.DecodeRecords[models.QuizSession](docs)
	if err != nil {
		return err
	}

	fmt.Println(renderTable("СЕССИИ КВИЗОВ", sessionLines(sessions)))
	return nil
}

func (t *TUI) flashcardsScreen(ctx context.Context) error {
	docs, err := t.services.LocalDocuments().GetCollection(ctx, models.CollectionFlashcards)
	if err != nil {
		return err
	}
	decks, err := service.DecodeRecords[models.FlashcardDeck](docs)
	if err != nil {
		return err
	}

	fmt.Println(renderTable("КОЛОДЫ КАРТОЧЕК", deckLines(decks)))
	return nil
}

// ── rendering helpers ───────────────────────────────────────────────────────

func quizLine(quiz models.Quiz) string {
	name := quiz.Name
	if name == "" {
		name = quiz.ID
	}
	line := fmt.Sprintf("%s (%d вопр.)", name, len(quiz.Questions))
	if quiz.IsDefault || quiz.ID == models.DefaultQuizID {
		line += " [встроенный]"
	}
	return line
}

func quizDetail(quiz models.Quiz) string {
	var b strings.Builder
	b.WriteString(quiz.Name + "\n")
	if quiz.Description != "" {
		b.WriteString(quiz.Description + "\n")
	}
	b.WriteString(strings.Repeat("─", 40) + "\n")
	for i, q := range quiz.Questions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Question))
	}
	return b.String()
}

func sessionLines(sessions []models.QuizSession) []string {
	lines := make([]string, 0, len(sessions))
	for _, s := range sessions {
		lines = append(lines, fmt.Sprintf("%s │ %s │ %d/%d", s.ID, s.QuizName, s.Score, s.TotalQuestions))
	}
	return lines
}

func deckLines(decks []models.FlashcardDeck) []string {
	lines := make([]string, 0, len(decks))
	for _, d := range decks {
		lines = append(lines, fmt.Sprintf("%s │ %d карт.", d.Name, len(d.Cards)))
	}
	return lines
}

func renderTable(title string, lines []string) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("─", 40) + "\n")
	if len(lines) == 0 {
		b.WriteString("(пусто)\n")
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	return b.String()
}
