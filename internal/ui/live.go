package ui

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/fakeyudi/aura/internal/pulse"
	"github.com/fakeyudi/aura/internal/termidle"
	"github.com/fakeyudi/aura/internal/workspace"
)

var liveHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// rescanEvery bounds how stale the live view can get with no file events
// (idle minutes keep ticking even when nothing is written).
const rescanEvery = 15 * time.Second

// RunLive shows a continuously updating pulse dashboard: the status panel
// and histogram re-render on every file event and on a periodic tick.
// Live mode never requests advice.
func RunLive(root string, exclude []string, window time.Duration, idleThreshold float64) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	// Watch every subdirectory; fsnotify is not recursive on its own.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			_ = watcher.Add(path)
		}
		return nil
	})

	m := liveModel{
		root:          root,
		exclude:       exclude,
		skip:          skip,
		window:        window,
		idleThreshold: idleThreshold,
		watcher:       watcher,
	}
	m.rescan()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type fileEventMsg fsnotify.Event
type rescanMsg struct{}

type liveModel struct {
	root          string
	exclude       []string
	skip          map[string]bool
	window        time.Duration
	idleThreshold float64
	watcher       *fsnotify.Watcher

	snap    pulse.Snapshot
	buckets []pulse.Bucket
	verdict pulse.Verdict
	asOf    time.Time
}

// rescan rebuilds the whole reading from a fresh workspace walk.
func (m *liveModel) rescan() {
	files, err := workspace.ScanTree(m.root, m.exclude)
	if err != nil {
		return // root vanished mid-run; keep the last good view
	}
	now := time.Now()
	m.asOf = now
	m.snap = pulse.BuildSnapshot(files, now)
	m.buckets = pulse.BuildHistogram(files, m.window, now)
	m.verdict = pulse.DetectIdle(m.snap.MinutesSince, termidle.Probe(), m.idleThreshold, false)
}

func (m liveModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return rescanMsg{}
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) {
					return fileEventMsg(ev)
				}
			case _, ok := <-m.watcher.Errors:
				if !ok {
					return rescanMsg{}
				}
				// Watcher errors are non-fatal; keep waiting.
			}
		}
	}
}

func tick() tea.Cmd {
	return tea.Tick(rescanEvery, func(time.Time) tea.Msg { return rescanMsg{} })
}

func (m liveModel) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), tick())
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.rescan()
		}
		return m, nil

	case fileEventMsg:
		// A newly created directory needs its own watch.
		if msg.Op.Has(fsnotify.Create) {
			if info, err := os.Stat(msg.Name); err == nil && info.IsDir() {
				if !m.skip[filepath.Base(msg.Name)] {
					_ = m.watcher.Add(msg.Name)
				}
			}
		}
		m.rescan()
		return m, m.waitForEvent()

	case rescanMsg:
		m.rescan()
		return m, tick()
	}
	return m, nil
}

func (m liveModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		StatusPanel(m.snap, m.verdict),
		"",
		Histogram(m.buckets, m.window),
		"",
		liveHintStyle.Render("  live — updated "+m.asOf.Format("15:04:05")+"  ·  r rescan  q quit"),
	)
}
