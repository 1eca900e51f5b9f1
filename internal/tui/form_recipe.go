// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Savrasov
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

type recipeForm struct {
	id    int64
	image []byte

	name         textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model

	categories  []models.Category
	categoryIdx int

	focus  int
	saving bool
	errMsg string

	save func(id int64, recipe models.Recipe) tea.Cmd
}

const (
	recipeFieldName = iota
	recipeFieldIngredients
	recipeFieldInstructions
	recipeFieldCategory
	recipeFieldCount
)

func newRecipeForm(recipe *models.Recipe, categories []models.Category, save func(int64, models.Recipe) tea.Cmd) *recipeForm {
	name := textinput.New()
	name.Placeholder = "название"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	ingredients := textarea.New()
	ingredients.Placeholder = "по одному ингредиенту на строку"
	ingredients.SetWidth(50)
	ingredients.SetHeight(5)

	instructions := textarea.New()
	instructions.Placeholder = "по одному шагу на строку"
	instructions.SetWidth(50)
	instructions.SetHeight(5)

	f := &recipeForm{
		name:         name,
		ingredients:  ingredients,
		instructions: instructions,
		categories:   categories,
		save:         save,
	}

	if recipe != nil {
		f.id = recipe.ID
		f.image = recipe.Image
		f.name.SetValue(recipe.Name)
		f.ingredients.SetValue(strings.Join(recipe.Ingredients, "\n"))
		f.instructions.SetValue(strings.Join(recipe.Instructions, "\n"))
		for i, c := range categories {
			if c.ID == recipe.CategoryID {
				f.categoryIdx = i
				break
			}
		}
	}

	return f
}

func (f *recipeForm) update(msg tea.Msg) (recordForm, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "ctrl+s":
			return f, f.submit()
		case "tab", "shift+tab":
			// the textareas swallow plain tab as input otherwise
			if keyMsg.String() == "tab" {
				f.setFocus((f.focus + 1) % recipeFieldCount)
			} else {
				f.setFocus((f.focus + recipeFieldCount - 1) % recipeFieldCount)
			}
			return f, nil
		case "left", "right":
			if f.focus == recipeFieldCategory && len(f.categories) > 0 {
				if keyMsg.String() == "right" {
					f.categoryIdx = (f.categoryIdx + 1) % len(f.categories)
				} else {
					f.categoryIdx = (f.categoryIdx + len(f.categories) - 1) % len(f.categories)
				}
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case recipeFieldName:
		f.name, cmd = f.name.Update(msg)
	case recipeFieldIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	case recipeFieldInstructions:
		f.instructions, cmd = f.instructions.Update(msg)
	}
	return f, cmd
}

func (f *recipeForm) setFocus(field int) {
	f.focus = field
	f.name.Blur()
	f.ingredients.Blur()
	f.instructions.Blur()

	switch field {
	case recipeFieldName:
		f.name.Focus()
	case recipeFieldIngredients:
		f.ingredients.Focus()
	case recipeFieldInstructions:
		f.instructions.Focus()
	}
}

func (f *recipeForm) submit() tea.Cmd {
	if strings.TrimSpace(f.name.Value()) == "" {
		f.errMsg = "Не заполнено обязательное поле: Название"
		return nil
	}
	if len(f.categories) == 0 {
		f.errMsg = "Сначала создайте хотя бы одну категорию"
		return nil
	}

	f.errMsg = ""
	f.saving = true

	return f.save(f.id, models.Recipe{
		ID:           f.id,
		Name:         strings.TrimSpace(f.name.Value()),
		Ingredients:  splitLines(f.ingredients.Value()),
		Instructions: splitLines(f.instructions.Value()),
		Image:        f.image,
		CategoryID:   f.categories[f.categoryIdx].ID,
	})
}

func (f *recipeForm) fail(msg string) {
	f.saving = false
	f.errMsg = msg
}

func (f *recipeForm) view() string {
	title := "НОВЫЙ РЕЦЕПТ"
	if f.id != 0 {
		title = "ИЗМЕНЕНИЕ РЕЦЕПТА"
	}

	category := "-"
	if len(f.categories) > 0 {
		category = f.categories[f.categoryIdx].Name
	}
	if f.focus == recipeFieldCategory {
		category = "◀ " + category + " ▶"
	}

	var b strings.Builder
	b.WriteString("Название:\n" + f.name.View() + "\n\n")
	b.WriteString("Ингредиенты:\n" + f.ingredients.View() + "\n\n")
	b.WriteString("Инструкции:\n" + f.instructions.View() + "\n\n")
	b.WriteString("Категория: " + category + "\n")

	if f.saving {
		b.WriteString("\nСохранение...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\nОшибка: " + f.errMsg + "\n")
	}

	return renderPage(title, b.String(), "ctrl+s: сохранить │ tab: следующее поле │ ←/→: категория │ esc: отмена")
}

// splitLines turns textarea content into an ordered list, dropping blank
// lines but keeping interior spacing of each entry.
func splitLines(v string) []string {
	lines := strings.Split(v, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimRight(line, " \t"))
		}
	}
	return out
}
