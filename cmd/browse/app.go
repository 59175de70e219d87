package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"

	"github.com/yourorg/listing-browser/view"
)

type loadedMsg struct{}

type priceBand struct {
	label    string
	min, max float64
}

var priceBands = []priceBand{
	{"any price", 0, 0},
	{"under $100k", 0, 100_000},
	{"$100k–$250k", 100_000, 250_000},
	{"$250k–$500k", 250_000, 500_000},
	{"$500k–$1m", 500_000, 1_000_000},
	{"over $1m", 1_000_000, 0},
}

type app struct {
	session *view.Session

	search   textinput.Model
	spin     spinner.Model
	body     viewport.Model
	styles   styles
	reloader *rate.Limiter

	band   int
	width  int
	height int
	ready  bool
}

func newApp(client *view.Client) *app {
	ti := textinput.New()
	ti.Placeholder = "search name, location or address"
	ti.Prompt = "/ "
	ti.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &app{
		session:  view.NewSession(client),
		search:   ti,
		spin:     sp,
		styles:   defaultStyles(),
		reloader: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (a *app) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.fetchCmd())
}

func (a *app) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		a.session.Load(context.Background())
		return loadedMsg{}
	}
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		bodyHeight := msg.Height - 5
		if bodyHeight < 3 {
			bodyHeight = 3
		}
		if !a.ready {
			a.body = viewport.New(msg.Width, bodyHeight)
			a.ready = true
		} else {
			a.body.Width = msg.Width
			a.body.Height = bodyHeight
		}
		a.refreshBody()
		return a, nil

	case loadedMsg:
		a.refreshBody()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.search.Focused() {
			switch msg.String() {
			case "esc", "enter":
				a.search.Blur()
				return a, nil
			case "ctrl+c":
				return a, tea.Quit
			default:
				var cmd tea.Cmd
				a.search, cmd = a.search.Update(msg)
				a.applyControls()
				return a, cmd
			}
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "/":
			a.search.Focus()
			return a, textinput.Blink
		case "c":
			a.cycleFilter(func(f *view.Filter) { f.Category = cycle(f.Category, a.session.Categories()) })
			return a, nil
		case "s":
			a.cycleFilter(func(f *view.Filter) { f.Status = cycle(f.Status, a.session.Statuses()) })
			return a, nil
		case "t":
			a.cycleFilter(func(f *view.Filter) { f.Tag = cycle(f.Tag, a.session.Tags()) })
			return a, nil
		case "p":
			a.band = (a.band + 1) % len(priceBands)
			a.applyControls()
			return a, nil
		case "r":
			if a.reloader.Allow() {
				// show the loading state right away; fetchCmd completes
				// asynchronously via loadedMsg
				a.session.StartLoading()
				a.refreshBody()
				return a, tea.Batch(a.spin.Tick, a.fetchCmd())
			}
			return a, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	cmds = append(cmds, cmd)
	a.body, cmd = a.body.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a *app) cycleFilter(edit func(*view.Filter)) {
	f := a.session.Filter()
	edit(&f)
	a.session.SetFilter(f)
	a.refreshBody()
}

// applyControls pushes the current control values into the session
// filter and recomputes the projection. No debounce: the scan over at
// most 500 in-memory records is cheap enough to run per keystroke.
func (a *app) applyControls() {
	f := a.session.Filter()
	f.Search = a.search.Value()
	f.MinPrice = priceBands[a.band].min
	f.MaxPrice = priceBands[a.band].max
	a.session.SetFilter(f)
	a.refreshBody()
}

func (a *app) refreshBody() {
	if !a.ready {
		return
	}
	a.body.SetContent(a.renderBody())
	a.body.GotoTop()
}

func (a *app) View() string {
	if !a.ready {
		return "starting..."
	}
	header := a.styles.Header.Render("listing browser")
	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(a.search.View() + "\n")
	b.WriteString(a.filterBar() + "\n")
	b.WriteString(a.body.View() + "\n")
	b.WriteString(a.styles.Muted.Render("/ search  c category  s status  t tag  p price  r reload  q quit"))
	return b.String()
}

func (a *app) filterBar() string {
	f := a.session.Filter()
	parts := []string{
		"category: " + orAny(f.Category),
		"status: " + orAny(f.Status),
		"tag: " + orAny(f.Tag),
		"price: " + priceBands[a.band].label,
	}
	return a.styles.FilterBar.Render(strings.Join(parts, "  ·  "))
}

func (a *app) renderBody() string {
	switch a.session.Phase() {
	case view.PhaseLoading:
		return a.spin.View() + " loading listings..."
	case view.PhaseError:
		return a.styles.Error.Render("could not load listings: "+a.session.Err()) +
			"\n" + a.styles.Muted.Render("press r to retry")
	}

	visible := a.session.Visible()
	if len(visible) == 0 {
		if a.session.Len() == 0 {
			return a.styles.Empty.Render("No listings found.")
		}
		return a.styles.Empty.Render("No listings match the current filters.")
	}

	cards := make([]string, 0, len(visible))
	for _, r := range visible {
		cards = append(cards, a.renderCard(r))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (a *app) renderCard(r view.Record) string {
	title := r.Name
	if title == "" {
		title = "Untitled listing"
	}
	var lines []string
	lines = append(lines, a.styles.CardTitle.Render(title)+"  "+a.styles.Price.Render(formatPrice(r.Price)))
	if r.Address != "" || r.Location != "" {
		lines = append(lines, a.styles.Muted.Render(strings.TrimSpace(r.Address+"  "+r.Location)))
	}
	var badges []string
	if r.Category != "" {
		badges = append(badges, a.styles.Badge.Render(r.Category))
	}
	if r.Status != "" {
		badges = append(badges, a.styles.Badge.Render(r.Status))
	}
	for _, t := range r.Tags {
		badges = append(badges, a.styles.Badge.Render(t))
	}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, " "))
	}
	if len(r.Amenities) > 0 {
		lines = append(lines, a.styles.Muted.Render(strings.Join(r.Amenities, ", ")))
	}
	card := strings.Join(lines, "\n")
	width := a.width - 4
	if width > 0 {
		return a.styles.Card.Width(width).Render(card)
	}
	return a.styles.Card.Render(card)
}

func cycle(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	if current == "" {
		return options[0]
	}
	for i, o := range options {
		if o == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}

func orAny(v string) string {
	if v == "" {
		return "any"
	}
	return v
}

func formatPrice(p float64) string {
	if p <= 0 {
		return "price on request"
	}
	return "$" + comma(fmt.Sprintf("%.0f", p))
}

func comma(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
