package initproject

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	renamedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
)

type spinner struct {
	frames []string
	index  int
}

func newSpinner() spinner { return spinner{frames: []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}} }
func (s *spinner) tick()  { s.index = (s.index + 1) % len(s.frames) }

func (s spinner) View() string { return s.frames[s.index] }

type TUI struct {
	app         *App
	noAnimation bool
	spinner     spinner
	mu          sync.Mutex
	cur, total  int
}

func NewTUI(app *App, noAnimation bool) *TUI {
	return &TUI{app: app, noAnimation: noAnimation, spinner: newSpinner()}
}

func (t *TUI) Run() error {
	summary, err := t.execute()
	if err != nil {
		return err
	}

	fmt.Print(FormatSummary(summary))

	if len(summary.Failed) > 0 {
		return fmt.Errorf("%d target(s) failed", len(summary.Failed))
	}

	if !t.app.cfg.DryRun {
		fmt.Print(FormatNextSteps())
	}
	return nil
}

func (t *TUI) execute() (Summary, error) {
	if t.noAnimation {
		return t.app.Execute()
	}

	t.app.SetProgressCallback(func(c, tot int) {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.cur, t.total = c, tot
	})

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(100 * time.Millisecond):
				t.spinner.tick()
				t.renderProgress()
			}
		}
	}()

	summary, err := t.app.Execute()
	close(done)
	fmt.Print("\r\x1b[K")

	return summary, err
}

func (t *TUI) renderProgress() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Printf("\r%s Renaming... %d/%d\x1b[K", t.spinner.View(), t.cur, t.total)
}

func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Renamed:", renamedStyle, s.Renamed)
	renderList("Modified:", modifiedStyle, s.Modified)
	renderList("Skipped:", skippedStyle, s.Skipped)
	renderList("Failed:", errorStyle, s.Failed)

	return b.String()
}

func FormatNextSteps() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Next steps:") + "\n")
	for _, step := range []string{"poetry install", "pre-commit install", "poetry run pytest"} {
		fmt.Fprintf(&b, "  %s\n", step)
	}
	return b.String()
}
