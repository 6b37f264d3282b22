package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duscope/duscope/pkg/duscope/cache"
	"github.com/duscope/duscope/pkg/duscope/errclass"
	"github.com/duscope/duscope/pkg/duscope/lister"
	"github.com/duscope/duscope/pkg/duscope/progress"
	"github.com/duscope/duscope/pkg/duscope/session"
	"github.com/duscope/duscope/pkg/duscope/sizer"
	"github.com/duscope/duscope/pkg/duscope/types"
)

// Options configures the browser.
type Options struct {
	Path       string
	Cache      *cache.Cache
	Partial    *progress.Table
	Lister     *lister.Lister
	Sizer      *sizer.Sizer
	Classifier *errclass.Classifier
	Interval   time.Duration
}

// snapshotMsg carries a session snapshot into the update loop.
type snapshotMsg types.Snapshot

// Model is the Bubble Tea model for the directory browser. Each
// directory drilled into gets its own scan session; the stack remembers
// the way back up.
type Model struct {
	opts Options

	stack   []string
	sess    *session.Session
	snaps   chan types.Snapshot
	snap    types.Snapshot
	listErr error

	cursor    int
	spinner   spinner.Model
	showStats bool
	stats     cache.Stats

	width  int
	height int
}

// Run starts the browser and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newModel creates the model and opens the first session.
func newModel(opts Options) *Model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	m := &Model{
		opts:    opts,
		snaps:   make(chan types.Snapshot, 16),
		spinner: s,
		width:   80,
		height:  24,
	}
	m.openSession(opts.Path)
	return m
}

// openSession detaches any current session and starts a new one for
// path. Detached sessions keep sizing in the background, so coming back
// to this directory is served from cache.
func (m *Model) openSession(path string) {
	if m.sess != nil {
		m.sess.Detach()
	}

	m.cursor = 0
	m.listErr = nil
	m.snap = types.Snapshot{Path: path, AnyCalculating: true}

	snaps := m.snaps
	m.sess = session.New(session.Options{
		Path:     path,
		Cache:    m.opts.Cache,
		Lister:   m.opts.Lister,
		Sizer:    m.opts.Sizer,
		Partial:  m.opts.Partial,
		Interval: m.opts.Interval,
		OnSnapshot: func(snap types.Snapshot) {
			select {
			case snaps <- snap:
			default:
				// Drop when the UI is behind; the next tick supersedes.
			}
		},
	})

	if err := m.sess.Start(context.Background()); err != nil {
		m.listErr = err
	}
}

// Init starts the spinner and the snapshot pump.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitSnapshot())
}

// waitSnapshot blocks on the snapshot channel.
func (m *Model) waitSnapshot() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-m.snaps)
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case snapshotMsg:
		// A detached session may still deliver one stale snapshot.
		if msg.Path == m.sess.Path() {
			m.snap = types.Snapshot(msg)
			m.clampCursor()
		}
		return m, m.waitSnapshot()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.sess.Detach()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.snap.Entries)-1 {
			m.cursor++
		}

	case "enter", "right", "l":
		if row, ok := m.selected(); ok && row.Entry.Kind == types.KindDirectory {
			m.stack = append(m.stack, m.sess.Path())
			m.openSession(row.Entry.Path)
		}

	case "backspace", "left", "h":
		if n := len(m.stack); n > 0 {
			parent := m.stack[n-1]
			m.stack = m.stack[:n-1]
			m.openSession(parent)
		}

	case "r":
		m.openSession(m.sess.Path())

	case "C":
		if err := m.opts.Cache.Clear(); err == nil {
			m.openSession(m.sess.Path())
		}

	case "s":
		m.showStats = !m.showStats
		if m.showStats {
			m.stats, _ = m.opts.Cache.Stats()
		}
	}

	return m, nil
}

// selected returns the row under the cursor.
func (m *Model) selected() (types.EntryStatus, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Entries) {
		return types.EntryStatus{}, false
	}
	return m.snap.Entries[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Entries) {
		m.cursor = len(m.snap.Entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.listErr != nil {
		b.WriteString(errorTextStyle.Render(fmt.Sprintf("  cannot open this directory: %v", m.listErr)))
		b.WriteString("\n\n")
		b.WriteString(mutedTextStyle.Render("  the location may need elevated disk access  •  backspace to go up"))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.snap.Entries) == 0 {
		if m.snap.AnyCalculating {
			b.WriteString(mutedTextStyle.Render("  listing..."))
		} else {
			b.WriteString(mutedTextStyle.Render("  empty directory"))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader shows the path, running total, and activity spinner.
func (m *Model) renderHeader() string {
	total := types.FormatSize(m.snap.TotalBytes)
	state := ""
	if m.snap.AnyCalculating {
		state = " " + m.spinner.View()
	}
	return fmt.Sprintf(" %s  %s  %s%s",
		titleStyle.Render("duscope"),
		pathStyle.Render(m.sess.Path()),
		total, state)
}

// renderList renders the visible window of entries.
func (m *Model) renderList() string {
	visible := m.height - 6
	if visible < 3 {
		visible = 3
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.snap.Entries))

	var b strings.Builder
	for i := start; i < end; i++ {
		row := m.snap.Entries[i]
		line := fmt.Sprintf(" %s  %s", m.renderSize(row), m.renderName(row))
		if i == m.cursor {
			line = selectedItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderSize formats the size column for one row.
func (m *Model) renderSize(row types.EntryStatus) string {
	switch {
	case row.Outcome.IsError():
		return errorTextStyle.Render(sizeStyle.Render("no access"))
	case row.Calculating && row.PartialBytes == 0:
		return mutedTextStyle.Render(sizeStyle.Render("..."))
	case row.Calculating:
		return mutedTextStyle.Render(sizeStyle.Render("≥" + types.FormatSize(row.PartialBytes)))
	default:
		return sizeStyle.Render(types.FormatSize(row.Outcome.Bytes))
	}
}

// renderName formats the name column, marking directories.
func (m *Model) renderName(row types.EntryStatus) string {
	name := row.Entry.Name
	if row.Entry.Kind == types.KindDirectory {
		name += "/"
	}
	if row.Outcome.IsError() {
		return errorTextStyle.Render(name)
	}
	return name
}

// renderFooter shows keys, error notes, and optional cache stats.
func (m *Model) renderFooter() string {
	help := " enter open  •  backspace up  •  r rescan  •  C clear cache  •  s stats  •  q quit"

	var extra string
	if m.snap.HasErrors {
		extra = errorTextStyle.Render("  some entries were inaccessible")
	}
	if m.showStats {
		extra += mutedTextStyle.Render(fmt.Sprintf("  cache: %d dirs, %d files, %d errors",
			m.stats.Directories, m.stats.Files, m.stats.Errors))
	}

	return mutedTextStyle.Render(help) + extra
}
