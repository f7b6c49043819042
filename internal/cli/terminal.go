package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Spinner frames for animated progress
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Terminal provides terminal-aware output utilities
type Terminal struct {
	IsTerminal   bool
	UseColor     bool
	out          io.Writer
	spinnerIndex int
}

// NewTerminal creates a new Terminal instance
func NewTerminal() *Terminal {
	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	return &Terminal{
		IsTerminal: isTerminal,
		UseColor:   term.IsTerminal(int(os.Stdout.Fd())) && !color.NoColor,
		out:        os.Stderr,
	}
}

// ClearLine clears the current line (terminal only)
func (t *Terminal) ClearLine() {
	if t.IsTerminal {
		fmt.Fprint(t.out, "\r\033[K")
	}
}

// Spinner returns the next spinner frame
func (t *Terminal) Spinner() string {
	if !t.IsTerminal {
		return ""
	}
	frame := spinnerFrames[t.spinnerIndex]
	t.spinnerIndex = (t.spinnerIndex + 1) % len(spinnerFrames)
	return frame
}

// Spin animates a spinner with msg on stderr until the returned stop func is called.
func (t *Terminal) Spin(msg string) (stop func()) {
	if !t.IsTerminal {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			t.ClearLine()
			fmt.Fprintf(t.out, "%s %s", t.Spinner(), msg)
			select {
			case <-done:
				t.ClearLine()
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

// Color applies attrs to text (terminal only)
func (t *Terminal) Color(text string, attrs ...color.Attribute) string {
	if !t.UseColor {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(text)
}

// Vote formats a vote tally, green for net positive and red for net negative
func (t *Terminal) Vote(up, down int) string {
	text := fmt.Sprintf("+%d / -%d", up, down)
	switch {
	case up > down:
		return t.Color(text, color.FgGreen)
	case down > up:
		return t.Color(text, color.FgRed)
	default:
		return text
	}
}
