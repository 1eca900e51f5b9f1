package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

// cmdCopyIngredients puts the ingredient list on the system clipboard,
// one ingredient per line, ready to paste into a shopping list.
func cmdCopyIngredients(recipe models.Recipe) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(strings.Join(recipe.Ingredients, "\n"))}
	}
}

func renderRecipeDetail(recipe models.Recipe, categoryName string) string {
	var b strings.Builder

	b.WriteString("Категория: " + categoryName + "\n\n")

	b.WriteString("Ингредиенты:\n")
	if len(recipe.Ingredients) == 0 {
		b.WriteString("  -\n")
	}
	for _, ingredient := range recipe.Ingredients {
		b.WriteString("  • " + ingredient + "\n")
	}

	b.WriteString("\nИнструкции:\n")
	if len(recipe.Instructions) == 0 {
		b.WriteString("  -\n")
	}
	for i, step := range recipe.Instructions {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	if len(recipe.Image) > 0 {
		b.WriteString(fmt.Sprintf("\nФото: %d байт\n", len(recipe.Image)))
	}

	return renderPage(strings.ToUpper(recipe.Name), strings.TrimRight(b.String(), "\n"),
		"c: копировать ингредиенты │ e: изменить │ esc: назад")
}
