package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savrasovpm/go-pantry-keeper/models"
)

type freezerForm struct {
	id int64

	name     textinput.Model
	quantity textinput.Model

	categories  []models.Category
	categoryIdx int

	focus  int
	saving bool
	errMsg string

	save func(id int64, item models.FreezerItem) tea.Cmd
}

const (
	freezerFieldName = iota
	freezerFieldQuantity
	freezerFieldCategory
	freezerFieldCount
)

func newFreezerForm(item *models.FreezerItem, categories []models.Category, save func(int64, models.FreezerItem) tea.Cmd) *freezerForm {
	name := textinput.New()
	name.Placeholder = "название"
	name.CharLimit = 100
	name.Width = 40
	name.Focus()

	quantity := textinput.New()
	quantity.Placeholder = "количество"
	quantity.CharLimit = 6
	quantity.Width = 10
	quantity.SetValue("1")

	f := &freezerForm{
		name:       name,
		quantity:   quantity,
		categories: categories,
		save:       save,
	}

	if item != nil {
		f.id = item.ID
		f.name.SetValue(item.Name)
		f.quantity.SetValue(strconv.Itoa(item.Quantity))
		for i, c := range categories {
			if c.ID == item.CategoryID {
				f.categoryIdx = i
				break
			}
		}
	}

	return f
}

func (f *freezerForm) update(msg tea.Msg) (recordForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "ctrl+s":
			return f, f.submit()
		case "tab", "down":
			f.setFocus((f.focus + 1) % freezerFieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + freezerFieldCount - 1) % freezerFieldCount)
			return f, nil
		case "left", "right":
			if f.focus == freezerFieldCategory && len(f.categories) > 0 {
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
	case freezerFieldName:
		f.name, cmd = f.name.Update(msg)
	case freezerFieldQuantity:
		f.quantity, cmd = f.quantity.Update(msg)
	}
	return f, cmd
}

func (f *freezerForm) setFocus(field int) {
	f.focus = field
	f.name.Blur()
	f.quantity.Blur()

	switch field {
	case freezerFieldName:
		f.name.Focus()
	case freezerFieldQuantity:
		f.quantity.Focus()
	}
}

func (f *freezerForm) submit() tea.Cmd {
	if strings.TrimSpace(f.name.Value()) == "" {
		f.errMsg = "Не заполнено обязательное поле: Название"
		return nil
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(f.quantity.Value()))
	if err != nil || quantity < 1 {
		f.errMsg = "Количество должно быть целым числом не меньше 1"
		return nil
	}
	if len(f.categories) == 0 {
		f.errMsg = "Сначала создайте хотя бы одну категорию"
		return nil
	}

	f.errMsg = ""
	f.saving = true

	return f.save(f.id, models.FreezerItem{
		ID:         f.id,
		Name:       strings.TrimSpace(f.name.Value()),
		Quantity:   quantity,
		CategoryID: f.categories[f.categoryIdx].ID,
	})
}

func (f *freezerForm) fail(msg string) {
	f.saving = false
	f.errMsg = msg
}

func (f *freezerForm) view() string {
	title := "НОВАЯ ЗАПИСЬ В МОРОЗИЛКЕ"
	if f.id != 0 {
		title = "ИЗМЕНЕНИЕ ЗАПИСИ"
	}

	category := "-"
	if len(f.categories) > 0 {
		category = f.categories[f.categoryIdx].Name
	}
	if f.focus == freezerFieldCategory {
		category = "◀ " + category + " ▶"
	}

	var b strings.Builder
	b.WriteString("Название:\n" + f.name.View() + "\n\n")
	b.WriteString("Количество:\n" + f.quantity.View() + "\n\n")
	b.WriteString("Категория: " + category + "\n")

	if f.saving {
		b.WriteString("\nСохранение...\n")
	}
	if f.errMsg != "" {
		b.WriteString("\nОшибка: " + f.errMsg + "\n")
	}

	return renderPage(title, b.String(), "enter: сохранить │ tab: следующее поле │ ←/→: категория │ esc: отмена")
}
