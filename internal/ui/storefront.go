package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calloway/showroom/internal/catalog"
	"github.com/calloway/showroom/internal/prefs"
	"github.com/calloway/showroom/internal/store"
)

// StorefrontOptions configures the storefront surface.
type StorefrontOptions struct {
	Store     *store.Store
	Changes   <-chan struct{}
	Currency  string
	ThemeName string
	PrefsPath string
	Category  string
	Sort      catalog.SortKey
}

// StorefrontModel is the root Bubble Tea model for the read-only catalog
// browser. It never mutates the store; it only reloads and re-derives its
// view when another surface saves.
type StorefrontModel struct {
	store     *store.Store
	changes   <-chan struct{}
	currency  string
	prefsPath string
	keys      keyMap

	theme  Theme
	width  int
	height int
	ready  bool

	products    []catalog.Product
	categoryIdx int // index into catalog.FilterOptions()
	sortIdx     int // index into catalog.SortKeys

	grid     viewport.Model
	showHelp bool
}

// NewStorefront creates the storefront model.
func NewStorefront(opts StorefrontOptions) StorefrontModel {
	m := StorefrontModel{
		store:     opts.Store,
		changes:   opts.Changes,
		currency:  opts.Currency,
		prefsPath: opts.PrefsPath,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(opts.ThemeName),
	}
	if m.prefsPath == "" {
		m.prefsPath = prefs.DefaultPath()
	}

	for i, c := range catalog.FilterOptions() {
		if c == opts.Category {
			m.categoryIdx = i
		}
	}
	for i, k := range catalog.SortKeys {
		if k == opts.Sort {
			m.sortIdx = i
		}
	}

	if m.store != nil {
		m.products = m.store.Products()
	}
	return m
}

// Init implements tea.Model.
func (m StorefrontModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m StorefrontModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.grid = viewport.New(msg.Width, m.gridHeight())
			m.ready = true
		} else {
			m.grid.Width = msg.Width
			m.grid.Height = m.gridHeight()
		}
		m.refreshGrid()
		return m, nil

	case productsChangedMsg:
		// Another surface saved; the watcher has already reloaded the
		// store's copy.
		m.products = m.store.Products()
		m.refreshGrid()
		return m, waitForChange(m.changes)
	}

	return m, nil
}

func (m StorefrontModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.categoryIdx = (m.categoryIdx + 1) % len(catalog.FilterOptions())
		m.refreshGrid()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		n := len(catalog.FilterOptions())
		m.categoryIdx = (m.categoryIdx - 1 + n) % n
		m.refreshGrid()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIdx = (m.sortIdx + 1) % len(catalog.SortKeys)
		m.refreshGrid()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.grid.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.grid.GotoBottom()
		return m, nil
	}

	// Remaining keys (j/k, pgup/pgdown) scroll the grid.
	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m StorefrontModel) category() string {
	return catalog.FilterOptions()[m.categoryIdx]
}

func (m StorefrontModel) sortKey() catalog.SortKey {
	return catalog.SortKeys[m.sortIdx]
}

func (m *StorefrontModel) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		Category: m.category(),
		Sort:     string(m.sortKey()),
	})
}

func (m StorefrontModel) gridHeight() int {
	// header + category bar + footer
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m *StorefrontModel) refreshGrid() {
	if !m.ready {
		return
	}
	visible := catalog.View(m.products, m.category(), m.sortKey())
	m.grid.SetContent(m.renderCards(visible))
}

// View implements tea.Model.
func (m StorefrontModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return renderHelpOverlay(m.theme, m.width, m.height, storefrontHelp())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCategoryBar())
	b.WriteString("\n")
	b.WriteString(m.grid.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m StorefrontModel) renderHeader() string {
	styles := m.theme.Styles()
	visible := catalog.View(m.products, m.category(), m.sortKey())

	parts := []string{
		styles.Logo.Render("showroom"),
		styles.MutedText.Render("Products:") + " " + styles.Text.Render(fmt.Sprintf("%d", len(visible))),
		styles.MutedText.Render("Sort:") + " " + styles.AccentText.Render(m.sortKey().Label()),
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m StorefrontModel) renderCategoryBar() string {
	styles := m.theme.Styles()

	var parts []string
	for i, c := range catalog.FilterOptions() {
		if i == m.categoryIdx {
			parts = append(parts, styles.Selected.Render(" "+c+" "))
		} else {
			parts = append(parts, styles.MutedText.Render(" "+c+" "))
		}
	}
	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(parts, ""))
}

func (m StorefrontModel) renderFooter() string {
	styles := m.theme.Styles()
	return styles.FaintText.Render(" h/l category · s sort · j/k scroll · T theme · ? help · q quit")
}

const cardWidth = 26

// renderCards lays the filtered, sorted products out as a grid of cards.
func (m StorefrontModel) renderCards(products []catalog.Product) string {
	styles := m.theme.Styles()

	if len(products) == 0 {
		empty := styles.MutedText.Render("No products found in this category.")
		return lipgloss.Place(m.width, m.gridHeight(), lipgloss.Center, lipgloss.Center, empty)
	}

	columns := m.width / (cardWidth + 2)
	if columns < 1 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(products); start += columns {
		end := start + columns
		if end > len(products) {
			end = len(products)
		}
		var cards []string
		for _, p := range products[start:end] {
			cards = append(cards, m.renderCard(p, styles))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m StorefrontModel) renderCard(p catalog.Product, styles Styles) string {
	inner := cardWidth - 4

	title := styles.Text.Bold(true).Render(padRight(truncate(p.Title, inner), inner))
	category := styles.MutedText.Render(padRight(p.Category, inner))
	price := styles.AccentText.Render(padRight(m.currency+p.Price, inner))

	image := "no image"
	if p.Image != "" {
		image = imageLabel(p.Image)
	}
	imageLine := styles.FaintText.Render(padRight(truncate(image, inner), inner))

	content := strings.Join([]string{title, category, price, imageLine}, "\n")
	return styles.Card.Width(cardWidth - 2).Render(content)
}

// imageLabel summarizes an image payload for display: data URIs report
// their size, URLs show their tail.
func imageLabel(image string) string {
	if strings.HasPrefix(image, "data:") {
		return fmt.Sprintf("embedded (%d KB)", len(image)/1024)
	}
	if idx := strings.LastIndex(image, "/"); idx >= 0 && idx < len(image)-1 {
		return image[idx+1:]
	}
	return image
}

func storefrontHelp() []helpSection {
	return []helpSection{
		{
			title: "Browsing",
			items: []helpItem{
				{"h/l", "Previous/next category"},
				{"s", "Cycle sort order"},
				{"j/k", "Scroll"},
				{"g/G", "Top/bottom"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}
}

// RunStorefront starts the storefront surface.
func RunStorefront(opts StorefrontOptions) error {
	p := tea.NewProgram(NewStorefront(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
