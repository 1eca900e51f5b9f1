package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

type categoryForm struct {
	name   textinput.Model
	saving bool
	errMsg string

	save func(category models.Category) tea.Cmd
}

func newCategoryForm(save func(models.Category) tea.Cmd) *categoryForm {
	name := textinput.New()
	name.Placeholder = "название категории"
	name.CharLimit = 50
	name.Width = 30
	name.Focus()

	return &categoryForm{name: name, save: save}
}

func (f *categoryForm) update(msg tea.Msg) (recordForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "enter" {
		if strings.TrimSpace(f.name.Value()) == "" {
			f.errMsg = "Не заполнено обязательное поле: Название"
			return f, nil
		}
		f.errMsg = ""
		f.saving = true
		return f, f.save(models.Category{Name: strings.TrimSpace(f.name.Value())})
	}

	var cmd tea.Cmd
	f.name, cmd = f.name.Update(msg)
	return f, cmd
}

func (f *categoryForm) fail(msg string) {
	f.saving = false
	f.errMsg = msg
}

func (f *categoryForm) view() string {
	var b strings.Builder
	b.WriteString("Название:\n" + f.name.View() + "\n")

	if f.saving {
		b.WriteString("\nСохранение...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\nОшибка: " + f.errMsg + "\n")
	}

	return renderPage("НОВАЯ КАТЕГОРИЯ", b.String(), "enter: сохранить │ esc: отмена")
}
