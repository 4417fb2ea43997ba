package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calloway/showroom/internal/admin"
	"github.com/calloway/showroom/internal/catalog"
	"github.com/calloway/showroom/internal/media"
	"github.com/calloway/showroom/internal/store"
)

// AdminOptions configures the admin surface.
type AdminOptions struct {
	Store     *store.Store
	Pipeline  *admin.Pipeline
	Changes   <-chan struct{}
	Currency  string
	ThemeName string

	// Login check. Placeholder equality test, not authentication.
	Username string
	Password string
}

// adminFocus identifies which control owns keyboard input.
type adminFocus int

const (
	focusTitle adminFocus = iota
	focusPrice
	focusCategory
	focusImage
	focusList
)

// AdminModel is the root Bubble Tea model for the admin editor: a login
// gate, a product form, and the product list. All mutations go through the
// pipeline; the model itself never writes to the store.
type AdminModel struct {
	store    *store.Store
	pipeline *admin.Pipeline
	changes  <-chan struct{}
	currency string
	username string
	password string
	keys     keyMap

	theme  Theme
	width  int
	height int
	ready  bool

	// Login gate
	loggedIn   bool
	loginUser  textinput.Model
	loginPass  textinput.Model
	loginFocus int
	loginError string

	// Form
	titleInput  textinput.Model
	priceInput  textinput.Model
	imageInput  textinput.Model
	categoryIdx int
	focus       adminFocus

	// List
	products []catalog.Product
	selected int
	listTop  int

	// Transient status line (the original's alerts).
	status    string
	statusErr bool

	// Delete confirmation modal
	confirmDelete bool
	deleteID      int64

	showHelp bool
}

// NewAdmin creates the admin model in the login state.
func NewAdmin(opts AdminOptions) AdminModel {
	m := AdminModel{
		store:    opts.Store,
		pipeline: opts.Pipeline,
		changes:  opts.Changes,
		currency: opts.Currency,
		username: opts.Username,
		password: opts.Password,
		keys:     DefaultKeyMap(),
		theme:    GetTheme(opts.ThemeName),
	}

	m.loginUser = textinput.New()
	m.loginUser.Placeholder = "Username"
	m.loginUser.Focus()
	m.loginPass = textinput.New()
	m.loginPass.Placeholder = "Password"
	m.loginPass.EchoMode = textinput.EchoPassword

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Product title"
	m.priceInput = textinput.New()
	m.priceInput.Placeholder = "Price"
	m.imageInput = textinput.New()
	m.imageInput.Placeholder = "Image path or URL"

	m.categoryIdx = 0
	m.focus = focusTitle
	m.titleInput.Focus()

	if m.store != nil {
		m.products = m.store.Products()
	}
	return m
}

// Init implements tea.Model.
func (m AdminModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, textinput.Blink}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case productsChangedMsg:
		// Another surface saved. Reload and keep going; a pending edit is
		// re-checked at save time and fails with NotFound if the target is
		// gone.
		m.products = m.store.Products()
		m.clampSelection()
		return m, waitForChange(m.changes)
	}

	if !m.loggedIn {
		return m.updateLoginInputs(msg)
	}
	return m.updateFormInputs(msg)
}

func (m AdminModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.loggedIn {
		return m.handleLoginKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.confirmDelete {
		return m.handleConfirmKey(msg)
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}
	return m.handleFormKey(msg)
}

// Login gate

func (m AdminModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.loginUser.Focus()
			m.loginPass.Blur()
		} else {
			m.loginPass.Focus()
			m.loginUser.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.loginFocus == 0 {
			// Enter on the username moves to the password, matching the
			// original popup's flow.
			m.loginFocus = 1
			m.loginPass.Focus()
			m.loginUser.Blur()
			return m, nil
		}
		if m.loginUser.Value() == m.username && m.loginPass.Value() == m.password {
			m.loggedIn = true
			m.loginError = ""
			return m, nil
		}
		m.loginError = "Invalid username or password!"
		return m, nil
	}

	return m.updateLoginInputs(msg)
}

func (m AdminModel) updateLoginInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [2]tea.Cmd
	m.loginUser, cmds[0] = m.loginUser.Update(msg)
	m.loginPass, cmds[1] = m.loginPass.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1])
}

// Delete confirmation

func (m AdminModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.confirmDelete = false
		return m.deleteProduct(m.deleteID)
	default:
		// Declined: plain no-op.
		m.confirmDelete = false
		return m, nil
	}
}

// List pane

func (m AdminModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.setFocus(focusTitle)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.products)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.products); n > 0 {
			m.selected = n - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()

	case key.Matches(msg, m.keys.Delete):
		if p := m.selectedProduct(); p != nil {
			m.confirmDelete = true
			m.deleteID = p.ID
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.pipeline.Mode() == admin.ModeEdit {
			m.cancelEdit()
		}
		return m, nil
	}

	return m, nil
}

// Form pane

func (m AdminModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		m.setFocus(m.nextFocus(1))
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(m.nextFocus(-1))
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submit()

	case key.Matches(msg, m.keys.Escape):
		if m.pipeline.Mode() == admin.ModeEdit {
			m.cancelEdit()
		} else {
			m.setFocus(focusList)
		}
		return m, nil
	}

	if m.focus == focusCategory {
		switch msg.String() {
		case "l", "right", " ":
			m.categoryIdx = (m.categoryIdx + 1) % len(catalog.Categories)
			return m, nil
		case "h", "left":
			n := len(catalog.Categories)
			m.categoryIdx = (m.categoryIdx - 1 + n) % n
			return m, nil
		}
		return m, nil
	}

	return m.updateFormInputs(msg)
}

func (m AdminModel) updateFormInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds [3]tea.Cmd
	m.titleInput, cmds[0] = m.titleInput.Update(msg)
	m.priceInput, cmds[1] = m.priceInput.Update(msg)
	m.imageInput, cmds[2] = m.imageInput.Update(msg)
	return m, tea.Batch(cmds[0], cmds[1], cmds[2])
}

func (m *AdminModel) nextFocus(dir int) adminFocus {
	order := []adminFocus{focusTitle, focusPrice, focusCategory, focusImage, focusList}
	for i, f := range order {
		if f == m.focus {
			return order[(i+dir+len(order))%len(order)]
		}
	}
	return focusTitle
}

func (m *AdminModel) setFocus(f adminFocus) {
	m.focus = f
	m.titleInput.Blur()
	m.priceInput.Blur()
	m.imageInput.Blur()
	switch f {
	case focusTitle:
		m.titleInput.Focus()
	case focusPrice:
		m.priceInput.Focus()
	case focusImage:
		m.imageInput.Focus()
	}
}

// Mutations

func (m AdminModel) submit() (tea.Model, tea.Cmd) {
	image, err := media.Ingest(m.imageInput.Value())
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot read image: %v", err), true)
		m.setFocus(focusImage)
		return m, nil
	}

	draft := admin.Draft{
		Title:    m.titleInput.Value(),
		Price:    m.priceInput.Value(),
		Category: catalog.Categories[m.categoryIdx],
		Image:    image,
	}

	wasEdit := m.pipeline.Mode() == admin.ModeEdit
	if wasEdit {
		_, err = m.pipeline.Update(m.pipeline.EditingID(), draft)
	} else {
		_, err = m.pipeline.Create(draft)
	}

	if err != nil {
		var verr *admin.ValidationError
		switch {
		case errors.As(err, &verr):
			m.setStatus(verr.Msg, true)
			m.focusField(verr.Field)
		case errors.Is(err, admin.ErrNotFound):
			// The edit target vanished; the pipeline already fell back to
			// Create mode.
			m.setStatus("Product not found", true)
			m.resetForm()
		default:
			m.setStatus(err.Error(), true)
		}
		return m, nil
	}

	if wasEdit {
		m.setStatus("Product updated successfully!", false)
	} else {
		m.setStatus("Product added successfully!", false)
	}
	m.products = m.store.Products()
	m.clampSelection()
	m.resetForm()
	return m, nil
}

func (m *AdminModel) focusField(f admin.Field) {
	switch f {
	case admin.FieldTitle:
		m.setFocus(focusTitle)
	case admin.FieldPrice:
		m.setFocus(focusPrice)
	case admin.FieldCategory:
		m.setFocus(focusCategory)
	case admin.FieldImage:
		m.setFocus(focusImage)
	}
}

func (m AdminModel) startEdit() (tea.Model, tea.Cmd) {
	p := m.selectedProduct()
	if p == nil {
		return m, nil
	}
	m.pipeline.StartEdit(p.ID)
	m.titleInput.SetValue(p.Title)
	m.priceInput.SetValue(p.Price)
	m.imageInput.SetValue(p.Image)
	for i, c := range catalog.Categories {
		if c == p.Category {
			m.categoryIdx = i
		}
	}
	m.setFocus(focusTitle)
	m.setStatus("", false)
	return m, nil
}

func (m *AdminModel) cancelEdit() {
	m.pipeline.Cancel()
	m.resetForm()
	m.setStatus("Edit cancelled", false)
}

func (m AdminModel) deleteProduct(id int64) (tea.Model, tea.Cmd) {
	wasEditing := m.pipeline.Mode() == admin.ModeEdit && m.pipeline.EditingID() == id

	removed, err := m.pipeline.Delete(id)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	if wasEditing {
		// The pipeline dropped back to Create mode; clear the stale form.
		m.resetForm()
	}
	if removed {
		m.setStatus("Product deleted successfully!", false)
	}
	m.products = m.store.Products()
	m.clampSelection()
	return m, nil
}

func (m *AdminModel) resetForm() {
	m.titleInput.SetValue("")
	m.priceInput.SetValue("")
	m.imageInput.SetValue("")
	m.categoryIdx = 0
	m.setFocus(focusTitle)
}

func (m *AdminModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *AdminModel) clampSelection() {
	if n := len(m.products); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m AdminModel) selectedProduct() *catalog.Product {
	if m.selected < 0 || m.selected >= len(m.products) {
		return nil
	}
	return &m.products[m.selected]
}

// Rendering

// View implements tea.Model.
func (m AdminModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if !m.loggedIn {
		return m.renderLogin()
	}
	if m.showHelp {
		return renderHelpOverlay(m.theme, m.width, m.height, adminHelp())
	}
	if m.confirmDelete {
		return m.renderConfirm()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderMain())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m AdminModel) renderLogin() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Admin Login"))
	b.WriteString("\n\n")
	b.WriteString(m.loginUser.View())
	b.WriteString("\n")
	b.WriteString(m.loginPass.View())
	if m.loginError != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.DangerText.Render(m.loginError))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("enter login · esc quit"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)))
}

func (m AdminModel) renderConfirm() string {
	styles := m.theme.Styles()

	var name string
	if idx := catalog.FindByID(m.products, m.deleteID); idx >= 0 {
		name = m.products[idx].Title
	}

	var b strings.Builder
	b.WriteString(styles.WarningText.Bold(true).Render("Delete product?"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(truncate(name, 36)))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("y/enter delete · any other key cancel"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Danger)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)))
}

func (m AdminModel) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{
		styles.Logo.Render("showroom admin"),
		styles.MutedText.Render("Products:") + " " + styles.Text.Render(fmt.Sprintf("%d", len(m.products))),
	}
	if m.pipeline.Mode() == admin.ModeEdit {
		parts = append(parts, styles.WarningText.Render("EDITING"))
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m AdminModel) renderMain() string {
	formWidth := 40
	if m.width < 90 {
		formWidth = m.width / 2
	}
	listWidth := m.width - formWidth - 2

	form := m.renderForm(formWidth)
	list := m.renderList(listWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, form, " ", list)
}

func (m AdminModel) renderForm(width int) string {
	styles := m.theme.Styles()

	title := "Add New Product"
	if m.pipeline.Mode() == admin.ModeEdit {
		title = "Edit Product"
	}

	label := func(s string, focused bool) string {
		if focused {
			return styles.AccentText.Bold(true).Render(s)
		}
		return styles.MutedText.Render(s)
	}

	categoryLine := "  " + catalog.Categories[m.categoryIdx]
	if m.focus == focusCategory {
		categoryLine = styles.Selected.Render("< " + catalog.Categories[m.categoryIdx] + " >")
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(label("Title", m.focus == focusTitle))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(label("Price ("+m.currency+")", m.focus == focusPrice))
	b.WriteString("\n")
	b.WriteString(m.priceInput.View())
	b.WriteString("\n")
	b.WriteString(label("Category", m.focus == focusCategory))
	b.WriteString("\n")
	b.WriteString(categoryLine)
	b.WriteString("\n")
	b.WriteString(label("Image", m.focus == focusImage))
	b.WriteString("\n")
	b.WriteString(m.imageInput.View())

	if m.status != "" {
		b.WriteString("\n\n")
		if m.statusErr {
			b.WriteString(styles.DangerText.Render(truncate(m.status, width-6)))
		} else {
			b.WriteString(styles.SuccessText.Render(truncate(m.status, width-6)))
		}
	}

	style := styles.Card
	if m.focus != focusList {
		style = styles.CardFocus
	}
	return style.Width(width).Render(b.String())
}

func (m AdminModel) renderList(width int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Products"))
	b.WriteString("\n\n")

	if len(m.products) == 0 {
		b.WriteString(styles.MutedText.Render("No products yet. Add your first product!"))
	} else {
		visible := m.listWindow()
		for i := visible.top; i < visible.bottom; i++ {
			p := m.products[i]
			line := fmt.Sprintf("%s  %s  %s",
				padRight(truncate(p.Title, 24), 24),
				padRight(p.Category, 8),
				m.currency+p.Price)
			if i == m.selected && m.focus == focusList {
				b.WriteString(styles.Selected.Render(padRight(line, width-6)))
			} else {
				b.WriteString(styles.Text.Render(line))
			}
			b.WriteString("\n")
		}
	}

	style := styles.Card
	if m.focus == focusList {
		style = styles.CardFocus
	}
	return style.Width(width).Render(b.String())
}

type window struct {
	top, bottom int
}

// listWindow keeps the selected row inside the visible slice of the list.
func (m AdminModel) listWindow() window {
	rows := m.height - 10
	if rows < 3 {
		rows = 3
	}
	top := 0
	if m.selected >= rows {
		top = m.selected - rows + 1
	}
	bottom := top + rows
	if bottom > len(m.products) {
		bottom = len(m.products)
	}
	return window{top: top, bottom: bottom}
}

func (m AdminModel) renderFooter() string {
	styles := m.theme.Styles()
	if m.focus == focusList {
		return styles.FaintText.Render(" j/k select · e edit · d delete · tab form · ? help · q quit")
	}
	return styles.FaintText.Render(" tab next field · enter save · esc cancel · ctrl+c quit")
}

func adminHelp() []helpSection {
	return []helpSection{
		{
			title: "Form",
			items: []helpItem{
				{"tab", "Next field"},
				{"shift+tab", "Previous field"},
				{"h/l", "Change category"},
				{"enter", "Add or save product"},
				{"esc", "Cancel edit"},
			},
		},
		{
			title: "Product list",
			items: []helpItem{
				{"j/k", "Move selection"},
				{"e", "Edit selected"},
				{"d", "Delete selected"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"ctrl+c", "Quit"},
			},
		},
	}
}

// RunAdmin starts the admin surface.
func RunAdmin(opts AdminOptions) error {
	p := tea.NewProgram(NewAdmin(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
