// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/charmbracelet/huh"
)

const (
	choiceLogin    = "login"
	choiceRegister = "register"
	choiceQuit     = "quit"
)

// SignInFlow walks the user through the welcome screen until a session is
// established: either an existing account login or a fresh registration.
// Returns [ErrUserQuit] when the user leaves instead.
func (t *TUI) SignInFlow(ctx context.Context) (store.LocalSession, error) {
	for {
		choice, err := t.welcomeScreen()
		if err != nil {
			return store.LocalSession{}, err
		}

		var session store.LocalSession
		switch choice {
		case choiceLogin:
			session, err = t.loginForm(ctx)
		case choiceRegister:
			session, err = t.registerForm(ctx)
		case choiceQuit:
			return store.LocalSession{}, ErrUserQuit
		}

		if err != nil {
			if isUserAbort(err) {
				// назад в главное меню
				continue
			}
			fmt.Println("Ошибка: " + err.Error())
			continue
		}

		return session, nil
	}
}

func (t *TUI) welcomeScreen() (string, error) {
	var choice string
	err := huh.NewSelect[string]().
		Title("Study Keeper").
		Description("Выберите действие:").
		Options(
			huh.NewOption("Войти", choiceLogin),
			huh.NewOption("Зарегистрироваться", choiceRegister),
			huh.NewOption("Выход", choiceQuit),
		).
		Value(&choice).
		Run()
	if err != nil {
		if isUserAbort(err) {
			return choiceQuit, nil
		}
		return "", err
	}
	return choice, nil
}

func (t *TUI) loginForm(ctx context.Context) (store.LocalSession, error) {
	var login, password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Логин").
				CharLimit(64).
				Validate(requireNonEmpty("логин")).
				Value(&login),
			huh.NewInput().
				Title("Пароль").
				EchoMode(huh.EchoModePassword).
				Validate(requireNonEmpty("пароль")).
				Value(&password),
		).Title("ВХОД"),
	)
	if err := form.Run(); err != nil {
		return store.LocalSession{}, err
	}

	session, err := t.services.AuthService.Login(ctx, strings.TrimSpace(login), password)
	if err != nil {
		t.logger.Err(err).Msg("login failed")
		return store.LocalSession{}, errors.New(humanizeServerUnavailableError(err))
	}

	return session, nil
}

func (t *TUI) registerForm(ctx context.Context) (store.LocalSession, error) {
	var login, name, password, repeat string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Логин").
				CharLimit(64).
				Validate(requireNonEmpty("логин")).
				Value(&login),
			huh.NewInput().
				Title("Имя").
				CharLimit(64).
				Value(&name),
			huh.NewInput().
				Title("Пароль").
				EchoMode(huh.EchoModePassword).
				Validate(requireNonEmpty("пароль")).
				Value(&password),
			huh.NewInput().
				Title("Повторите пароль").
				EchoMode(huh.EchoModePassword).
				Value(&repeat),
		).Title("РЕГИСТРАЦИЯ"),
	)
	if err := form.Run(); err != nil {
		return store.LocalSession{}, err
	}

	if password != repeat {
		return store.LocalSession{}, errors.New("Пароли не совпадают")
	}

	session, err := t.services.AuthService.Register(ctx, strings.TrimSpace(login), password, strings.TrimSpace(name))
	if err != nil {
		t.logger.Err(err).Msg("registration failed")
		return store.LocalSession{}, errors.New(humanizeServerUnavailableError(err))
	}

	return session, nil
}

func requireNonEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New("заполните поле: " + field)
		}
		return nil
	}
}
