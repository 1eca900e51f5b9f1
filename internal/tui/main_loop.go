package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/savrasovpm/go-pantry-keeper/internal/catalog"
	"github.com/savrasovpm/go-pantry-keeper/internal/service"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

type tab int

const (
	tabRecipes tab = iota
	tabFreezer
	tabCategories
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabRecipes:
		return "Рецепты"
	case tabFreezer:
		return "Морозилка"
	case tabCategories:
		return "Категории"
	default:
		return "?"
	}
}

type logoutDoneMsg struct {
	err error
}

// row is one rendered list line.
type row struct {
	id    int64
	title string
}

type mainLoopModel struct {
	ctx      context.Context
	session  service.SessionService
	catalogs Catalogs
	identity models.Identity

	tab    tab
	idx    int
	filter catalog.FilterState

	searchInput textinput.Model
	searching   bool

	loading bool
	status  string
	errMsg  string

	detailRecipe *models.Recipe
	confirming   bool
	form         recordForm

	logout bool
}

func newMainLoopModel(ctx context.Context, session service.SessionService, catalogs Catalogs, identity models.Identity) mainLoopModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "поиск"
	searchInput.CharLimit = 40
	searchInput.Width = 30

	return mainLoopModel{
		ctx:         ctx,
		session:     session,
		catalogs:    catalogs,
		identity:    identity,
		searchInput: searchInput,
		loading:     true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	// categories back every screen: the filter cycler and the recipe list
	// both resolve names through their cache
	return tea.Batch(m.cmdLoad(tabRecipes), m.cmdLoad(tabCategories))
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		if msg.tab == m.tab {
			m.loading = false
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.tab == m.tab {
			m.errMsg = ""
			m.clampIdx()
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			if m.form != nil {
				m.form.fail(humanizeError(msg.err))
			} else {
				m.errMsg = humanizeError(msg.err)
			}
			return m, nil
		}
		m.form = nil
		m.status = "Запись сохранена"
		m.errMsg = ""
		return m, nil

	case deletedMsg:
		m.confirming = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Запись удалена"
		m.errMsg = ""
		m.clampIdx()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Ингредиенты скопированы в буфер обмена"
		return m, nil

	case logoutDoneMsg:
		// local state is cleared regardless, a persistence failure only
		// costs the next startup a login
		m.logout = true
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.confirming {
		return m.updateConfirm(msg)
	}
	if m.detailRecipe != nil {
		return m.updateDetail(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	return m.updateList(msg)
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab", "right":
		return m.switchTab((m.tab + 1) % tabCount)
	case "shift+tab", "left":
		return m.switchTab((m.tab + tabCount - 1) % tabCount)

	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.rows())-1 {
			m.idx++
		}

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.filter.Search)
		m.searchInput.Focus()
		return m, textinput.Blink

	case "f":
		if m.tab != tabCategories {
			m.cycleCategoryFilter()
			m.clampIdx()
		}

	case "esc":
		if m.filter != (catalog.FilterState{}) {
			m.filter.Reset()
			m.clampIdx()
		}

	case "s":
		m.status = ""
		m.loading = true
		return m, m.cmdLoad(m.tab)

	case "n":
		m.status = ""
		m.form = m.newCreateForm()
		return m, textinput.Blink

	case "e":
		return m.openEditForm()

	case "d":
		if _, ok := m.currentRow(); ok {
			m.confirming = true
		}

	case "enter":
		if m.tab == tabRecipes {
			if r, ok := m.currentRow(); ok {
				if recipe, err := m.catalogs.Recipes.Get(r.id); err == nil {
					m.detailRecipe = &recipe
				}
			}
		}

	case "l":
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.searching = false
			return m, nil
		case "esc":
			m.searching = false
			m.filter.Search = ""
			m.searchInput.SetValue("")
			m.clampIdx()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.Search = m.searchInput.Value()
	m.clampIdx()
	return m, cmd
}

func (m mainLoopModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		if r, ok := m.currentRow(); ok {
			return m, m.cmdDelete(r.id)
		}
		m.confirming = false
	case "n", "esc":
		m.confirming = false
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "enter":
		m.detailRecipe = nil
	case "c":
		return m, cmdCopyIngredients(*m.detailRecipe)
	case "e":
		recipe := *m.detailRecipe
		m.detailRecipe = nil
		m.form = newRecipeForm(&recipe, m.catalogs.Categories.Records(), m.cmdSaveRecipe)
		return m, textinput.Blink
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.update(msg)
	m.form = form
	return m, cmd
}

func (m *mainLoopModel) switchTab(next tab) (tea.Model, tea.Cmd) {
	// a late response for the screen we are leaving must not clobber it
	switch m.tab {
	case tabRecipes:
		m.catalogs.Recipes.Deactivate()
	case tabFreezer:
		m.catalogs.Freezer.Deactivate()
	case tabCategories:
		m.catalogs.Categories.Deactivate()
	}

	m.tab = next
	m.idx = 0
	m.filter.Reset()
	m.searchInput.SetValue("")
	m.status = ""
	m.errMsg = ""
	m.loading = true

	return *m, m.cmdLoad(next)
}

func (m *mainLoopModel) cycleCategoryFilter() {
	categories := m.catalogs.Categories.Records()
	if len(categories) == 0 {
		return
	}

	if m.filter.Category == catalog.AllCategories {
		m.filter.Category = categories[0].ID
		return
	}
	for i, c := range categories {
		if c.ID == m.filter.Category {
			if i+1 < len(categories) {
				m.filter.Category = categories[i+1].ID
			} else {
				m.filter.Category = catalog.AllCategories
			}
			return
		}
	}
	m.filter.Category = catalog.AllCategories
}

func (m *mainLoopModel) clampIdx() {
	if n := len(m.rows()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) rows() []row {
	switch m.tab {
	case tabRecipes:
		recipes := m.catalogs.Recipes.View(m.filter)
		rows := make([]row, 0, len(recipes))
		for _, r := range recipes {
			rows = append(rows, row{id: r.ID, title: fmt.Sprintf("%s  [%s]", r.Name, m.categoryName(r.CategoryID))})
		}
		return rows
	case tabFreezer:
		items := m.catalogs.Freezer.View(m.filter)
		rows := make([]row, 0, len(items))
		for _, f := range items {
			name := f.CategoryName
			if name == "" {
				name = m.categoryName(f.CategoryID)
			}
			rows = append(rows, row{id: f.ID, title: fmt.Sprintf("%s ×%d  [%s]", f.Name, f.Quantity, name)})
		}
		return rows
	default:
		categories := m.catalogs.Categories.View(m.filter)
		rows := make([]row, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, row{id: c.ID, title: c.Name})
		}
		return rows
	}
}

func (m mainLoopModel) currentRow() (row, bool) {
	rows := m.rows()
	if len(rows) == 0 || m.idx < 0 || m.idx >= len(rows) {
		return row{}, false
	}
	return rows[m.idx], true
}

func (m mainLoopModel) categoryName(id int64) string {
	if category, err := m.catalogs.Categories.Get(id); err == nil {
		return category.Name
	}
	return "-"
}

func (m mainLoopModel) newCreateForm() recordForm {
	switch m.tab {
	case tabRecipes:
		return newRecipeForm(nil, m.catalogs.Categories.Records(), m.cmdSaveRecipe)
	case tabFreezer:
		return newFreezerForm(nil, m.catalogs.Categories.Records(), m.cmdSaveFreezerItem)
	default:
		return newCategoryForm(m.cmdSaveCategory)
	}
}

func (m mainLoopModel) openEditForm() (tea.Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}

	switch m.tab {
	case tabRecipes:
		recipe, err := m.catalogs.Recipes.Get(r.id)
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.form = newRecipeForm(&recipe, m.catalogs.Categories.Records(), m.cmdSaveRecipe)
		return m, textinput.Blink
	case tabFreezer:
		item, err := m.catalogs.Freezer.Get(r.id)
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.form = newFreezerForm(&item, m.catalogs.Categories.Records(), m.cmdSaveFreezerItem)
		return m, textinput.Blink
	default:
		m.status = "Категории нельзя изменять, только создавать и удалять"
		return m, nil
	}
}

func (m mainLoopModel) cmdLoad(t tab) tea.Cmd {
	ctx := m.ctx
	catalogs := m.catalogs

	return func() tea.Msg {
		var err error
		switch t {
		case tabRecipes:
			_, err = catalogs.Recipes.LoadAll(ctx)
		case tabFreezer:
			_, err = catalogs.Freezer.LoadAll(ctx)
		case tabCategories:
			_, err = catalogs.Categories.LoadAll(ctx)
		}
		return listLoadedMsg{tab: t, err: err}
	}
}

func (m mainLoopModel) cmdSaveRecipe(id int64, recipe models.Recipe) tea.Cmd {
	ctx := m.ctx
	cache := m.catalogs.Recipes

	return func() tea.Msg {
		var err error
		if id == 0 {
			_, err = cache.Create(ctx, recipe)
		} else {
			_, err = cache.Update(ctx, id, recipe)
		}
		return savedMsg{err: err}
	}
}

func (m mainLoopModel) cmdSaveFreezerItem(id int64, item models.FreezerItem) tea.Cmd {
	ctx := m.ctx
	cache := m.catalogs.Freezer

	return func() tea.Msg {
		var err error
		if id == 0 {
			_, err = cache.Create(ctx, item)
		} else {
			_, err = cache.Update(ctx, id, item)
		}
		return savedMsg{err: err}
	}
}

func (m mainLoopModel) cmdSaveCategory(category models.Category) tea.Cmd {
	ctx := m.ctx
	cache := m.catalogs.Categories

	return func() tea.Msg {
		_, err := cache.Create(ctx, category)
		return savedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	catalogs := m.catalogs
	t := m.tab

	return func() tea.Msg {
		var err error
		switch t {
		case tabRecipes:
			err = catalogs.Recipes.Delete(ctx, id)
		case tabFreezer:
			err = catalogs.Freezer.Delete(ctx, id)
		case tabCategories:
			err = catalogs.Categories.Delete(ctx, id)
		}
		return deletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session
	catalogs := m.catalogs

	return func() tea.Msg {
		err := session.Logout(ctx)
		catalogs.Recipes.Reset()
		catalogs.Freezer.Reset()
		catalogs.Categories.Reset()
		return logoutDoneMsg{err: err}
	}
}

func (m mainLoopModel) View() string {
	if m.form != nil {
		return m.form.view()
	}
	if m.detailRecipe != nil {
		return renderRecipeDetail(*m.detailRecipe, m.categoryName(m.detailRecipe.CategoryID))
	}

	var b strings.Builder

	for t := tab(0); t < tabCount; t++ {
		name := t.title()
		if t == m.tab {
			name = "[" + name + "]"
		}
		b.WriteString(name)
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	if m.filter.Category != catalog.AllCategories {
		b.WriteString("Фильтр: ")
		b.WriteString(m.categoryName(m.filter.Category))
		b.WriteString("\n")
	}
	if m.searching {
		b.WriteString("Поиск: ")
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	} else if m.filter.Search != "" {
		b.WriteString("Поиск: ")
		b.WriteString(m.filter.Search)
		b.WriteString("\n")
	}
	if m.filter != (catalog.FilterState{}) || m.searching {
		b.WriteString("\n")
	}

	rows := m.rows()
	switch {
	case m.loading && len(rows) == 0:
		b.WriteString("Загрузка...\n")
	case len(rows) == 0:
		b.WriteString("Нет записей\n")
	default:
		for i, r := range rows {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(fitText(r.title, 60))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nОшибка: " + m.errMsg + "\n")
	}

	if m.confirming {
		if r, ok := m.currentRow(); ok {
			b.WriteString("\n")
			b.WriteString(overlayBoxStyle.Render("Удалить \"" + fitText(r.title, 40) + "\"?\n\ny да    n нет"))
			b.WriteString("\n")
		}
	}

	hotKeys := "tab: раздел │ /: поиск │ f: фильтр │ n: новая │ e: изменить │ d: удалить │ s: обновить │ l: выйти из аккаунта"
	if m.tab == tabRecipes {
		hotKeys = "enter: открыть │ " + hotKeys
	}

	title := "PANTRYKEEPER — " + m.identity.Username
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
