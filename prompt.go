package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// multiSelectModel is the Bubble Tea model behind the interactive uninstall
// prompt: a checkbox list over the unused dependency set.
type multiSelectModel struct {
	items     []string
	selected  map[int]bool
	cursor    int
	confirmed bool
	quitting  bool
}

func initialMultiSelectModel(items []string, preselectAll bool) multiSelectModel {
	selected := make(map[int]bool, len(items))
	if preselectAll {
		for i := range items {
			selected[i] = true
		}
	}
	return multiSelectModel{
		items:    items,
		selected: selected,
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		for i := range m.items {
			m.selected[i] = true
		}
	case "n":
		for i := range m.items {
			m.selected[i] = false
		}
	}

	return m, nil
}

func (m multiSelectModel) View() string {
	if m.quitting || m.confirmed {
		return ""
	}

	var b strings.Builder
	b.WriteString("Select dependencies to delete:\n")
	b.WriteString("(space: toggle, a: all, n: none, enter: confirm, q: cancel)\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		checkbox := "[ ]"
		if m.selected[i] {
			checkbox = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, checkbox, item)
	}

	return b.String()
}

// SelectDependenciesInteractively presents a multi-select prompt over the
// unused set and returns the user-confirmed subset. Cancelling returns nil.
func SelectDependenciesInteractively(unusedDependencies []string, preselectAll bool, out io.Writer) []string {
	program := tea.NewProgram(initialMultiSelectModel(unusedDependencies, preselectAll), tea.WithOutput(out))

	final, err := program.Run()
	if err != nil {
		return nil
	}

	model, ok := final.(multiSelectModel)
	if !ok || !model.confirmed {
		return nil
	}

	var picked []string
	for i, item := range model.items {
		if model.selected[i] {
			picked = append(picked, item)
		}
	}
	return picked
}
