package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrNoExamples is returned when there is nothing to choose from
var ErrNoExamples = errors.New("no examples available")

// SelectExample asks the user to pick one of names
func SelectExample(names []string, accessible bool) (string, error) {
	if len(names) == 0 {
		return "", ErrNoExamples
	}

	choice := names[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which example do you want to start from?").
				Options(huh.NewOptions(names...)...).
				Filtering(true).
				Height(12).
				Value(&choice),
		),
	).WithTheme(GetTheme()).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// PromptDestination asks for the project directory, proposing fallback
func PromptDestination(fallback string, accessible bool) (string, error) {
	dest := fallback
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where should the project be created?").
				Placeholder(fallback).
				Value(&dest).
				Validate(ValidateRequired),
		),
	).WithTheme(GetTheme()).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return "", err
	}
	return dest, nil
}
