package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/dixit/internal/config"
	"github.com/Makepad-fr/dixit/internal/model"
	"github.com/Makepad-fr/dixit/internal/quotes"
	"github.com/Makepad-fr/dixit/internal/store/jsonstore"
	"github.com/Makepad-fr/dixit/internal/ui"
)

// listItem adapts a Quote to bubbles/list.Item
type listItem struct {
	model.Quote
}

func (i listItem) line() string {
	attribution := i.Author
	if attribution == "" {
		attribution = "Unknown"
	}
	s := fmt.Sprintf("❝ %s — %s", i.Text, attribution)
	if i.Category != "" {
		s += " [" + i.Category + "]"
	}
	return s
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.line() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Text + " " + i.Author + " " + i.Category }

// answer is a settable Confirmer: synchronous store confirmations get
// whatever the TUI decided before the call.
type answer struct{ yes bool }

func (a *answer) Confirm(string) bool { return a.yes }

// add input happens in three stages sharing one text input.
const (
	stageText = iota
	stageAuthor
	stageCategory
)

type modelTUI struct {
	list  list.Model
	store *quotes.Store
	reply *answer

	category string // active filter, "all" or a known category

	// Inline add
	adding   bool
	stage    int
	draft    model.Quote
	ti       textinput.Model
	addErr   string
	dupDraft *model.Quote // waiting for "add duplicate anyway?"

	// Clear-all confirmation
	confirmingClear bool

	// Last picked quote, shown under the list
	picked *model.Quote
	status string

	width, height int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	raw := it.line()
	if len([]rune(raw)) > 78 {
		raw = string([]rune(raw)[:75]) + "..."
	}
	prefix := "  "
	line := raw
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	} else {
		line = ui.MutedStyle.Render(raw)
	}
	fmt.Fprintln(w, prefix+line)
}

// Run starts the interactive quote browser. Mutations persist as they
// happen; quitting just leaves the program.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	durable, err := jsonstore.Durable(cfg.DataDir)
	if err != nil {
		return err
	}
	reply := &answer{}
	store := quotes.New(durable, jsonstore.Session(), quotes.WithConfirmer(reply))

	m := newModel(store, reply)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(store *quotes.Store, reply *answer) modelTUI {
	category := store.SelectedCategory()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("quote", "quotes")

	randBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "random"))
	catBind := key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	clearBind := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all"))
	extra := func() []key.Binding { return []key.Binding{randBind, catBind, addBind, clearBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := modelTUI{
		list:     l,
		store:    store,
		reply:    reply,
		category: category,
		width:    80,
		height:   24,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 280
	m.reload()
	return m
}

// reload rebuilds the visible list from the store and current filter.
func (m *modelTUI) reload() {
	filtered := m.store.Filtered(m.category)
	items := make([]list.Item, 0, len(filtered))
	for _, q := range filtered {
		items = append(items, listItem{q})
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s   %s %s  %s %d/%d",
		ui.TitleStyle.Render("Dixit"),
		ui.AccentStyle.Render("filter"), m.category,
		ui.AccentStyle.Render("showing"), len(filtered), m.store.Len(),
	)
}

func (m *modelTUI) cycleCategory() {
	cats := append([]string{quotes.AllCategories}, m.store.Categories()...)
	next := 0
	for i, c := range cats {
		if c == m.category {
			next = (i + 1) % len(cats)
			break
		}
	}
	m.category = cats[next]
	m.store.SetSelectedCategory(m.category)
	m.reload()
}

func (m *modelTUI) startAdd() {
	m.adding = true
	m.stage = stageText
	m.draft = model.Quote{}
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Placeholder = "Quote text..."
	m.ti.Focus()
}

// submitStage advances the three-step add input, calling Add once the
// category stage is done.
func (m *modelTUI) submitStage() {
	v := strings.TrimSpace(m.ti.Value())
	switch m.stage {
	case stageText:
		if v == "" {
			m.addErr = "Text cannot be empty"
			return
		}
		m.draft.Text = v
		m.stage = stageAuthor
		m.ti.SetValue("")
		m.ti.Placeholder = "Author (optional)..."
		m.addErr = ""
	case stageAuthor:
		m.draft.Author = v
		m.stage = stageCategory
		m.ti.SetValue("")
		m.ti.Placeholder = "Category (optional)..."
	case stageCategory:
		m.draft.Category = v
		m.finishAdd()
	}
}

func (m *modelTUI) finishAdd() {
	m.adding = false
	m.ti.Blur()

	// First try declining duplicates; if that made the call a no-op,
	// ask the user before retrying with a yes answer.
	m.reply.yes = false
	added, err := m.store.Add(m.draft)
	if err != nil {
		m.status = ui.ErrorStyle.Render(err.Error())
		return
	}
	if !added {
		d := m.draft
		m.dupDraft = &d
		return
	}
	m.status = ui.SuccessStyle.Render("✔ added")
	m.reload()
}

func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	// duplicate-add confirmation
	if m.dupDraft != nil {
		if k, ok := msg.(tea.KeyMsg); ok {
			if k.String() == "y" {
				m.reply.yes = true
				if added, err := m.store.Add(*m.dupDraft); err == nil && added {
					m.status = ui.SuccessStyle.Render("✔ added duplicate")
					m.reload()
				}
				m.reply.yes = false
			} else {
				m.status = ui.MutedStyle.Render("not added")
			}
			m.dupDraft = nil
		}
		return m, nil
	}

	// clear-all confirmation
	if m.confirmingClear {
		if k, ok := msg.(tea.KeyMsg); ok {
			if k.String() == "y" {
				m.reply.yes = true
				m.store.ClearAll()
				m.reply.yes = false
				m.picked = nil
				m.category = quotes.AllCategories
				m.status = ui.SuccessStyle.Render("✔ cleared")
				m.reload()
			} else {
				m.status = ui.MutedStyle.Render("aborted")
			}
			m.confirmingClear = false
		}
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				m.submitStage()
				return m, nil
			case "esc":
				m.adding = false
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// let the list's own filter input capture keys first
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r":
			q, err := m.store.Pick(m.category)
			if err != nil {
				m.status = ui.ErrorStyle.Render(fmt.Sprintf("no quotes for %q", m.category))
				m.picked = nil
				return m, nil
			}
			m.picked = &q
			m.status = ""
			return m, nil
		case "c":
			m.cycleCategory()
			return m, nil
		case "a":
			m.startAdd()
			return m, nil
		case "x":
			m.confirmingClear = true
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	listHeight := m.height - 4
	if m.adding || m.picked != nil || m.confirmingClear || m.dupDraft != nil {
		listHeight = m.height - 8
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()

	switch {
	case m.adding:
		title := [...]string{"Add quote — text", "Add quote — author", "Add quote — category"}[m.stage]
		if m.addErr != "" {
			title += " — " + ui.ErrorStyle.Render(m.addErr)
		}
		content += "\n" + ui.PanelStyle.Render(title+"\n"+m.ti.View())
	case m.dupDraft != nil:
		content += "\n" + ui.PanelStyle.Render("This quote already exists. Press "+ui.TitleStyle.Render("y")+" to add anyway, any other key to cancel.")
	case m.confirmingClear:
		content += "\n" + ui.PanelStyle.Render(ui.ErrorStyle.Render("Delete ALL quotes?")+" Press "+ui.TitleStyle.Render("y")+" to confirm, any other key to abort.")
	case m.picked != nil:
		attribution := m.picked.Author
		if attribution == "" {
			attribution = "Unknown"
		}
		body := "❝ " + m.picked.Text + "\n" + ui.MutedStyle.Render("— "+attribution)
		if m.picked.Category != "" {
			body += "  " + ui.CategoryStyle.Render("["+m.picked.Category+"]")
		}
		content += "\n" + ui.PanelStyle.Render(body)
	}

	if m.status != "" {
		content += "\n" + m.status
	}
	return ui.PanelStyle.Render(content)
}
