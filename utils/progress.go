package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const (
	successColor = "\x1b[32m"
	defaultColor = "\x1b[0m"
)

// spinner frames
const frames = `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`

// ProgressIndicator shows a spinner next to a message while a long running task is in progress.
type ProgressIndicator struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	running    bool
	StopMsg    string
	HideCursor bool
	done       chan struct{}
}

// NewProgressIndicator instantiates a new progress indicator writing to stderr.
func NewProgressIndicator(msg string, d time.Duration) *ProgressIndicator {
	return NewProgressIndicatorTo(os.Stderr, msg, d)
}

// NewProgressIndicatorTo instantiates a new progress indicator writing to w.
func NewProgressIndicatorTo(w io.Writer, msg string, d time.Duration) *ProgressIndicator {
	return &ProgressIndicator{
		delay:   d,
		writer:  w,
		message: msg,
	}
}

// Start starts the spinner. Calling Start on a running indicator is a no-op.
func (pi *ProgressIndicator) Start() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	if pi.running {
		return
	}
	pi.running = true
	pi.done = make(chan struct{})

	if pi.HideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(pi.writer, "\033[?25l")
	}

	go pi.spin(pi.done)
}

func (pi *ProgressIndicator) spin(done <-chan struct{}) {
	ticker := time.NewTicker(pi.delay)
	defer ticker.Stop()

	for {
		for _, r := range frames {
			pi.mu.Lock()
			if !pi.running {
				pi.mu.Unlock()
				return
			}
			output := fmt.Sprintf("\r%s%s %c%s", pi.message, successColor, r, defaultColor)
			fmt.Fprint(pi.writer, output)
			pi.lastOutput = output
			pi.mu.Unlock()

			select {
			case <-done:
				return
			case <-ticker.C:
			}
		}
	}
}

// Stop stops the spinner, clears its line and prints StopMsg if it is set.
// Nothing is written to the output once Stop returns.
func (pi *ProgressIndicator) Stop() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	if !pi.running {
		return
	}
	pi.running = false
	close(pi.done)

	pi.clear()
	pi.restoreCursor()
	if len(pi.StopMsg) > 0 {
		fmt.Fprint(pi.writer, pi.StopMsg)
	}
}

func (pi *ProgressIndicator) restoreCursor() {
	if pi.HideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(pi.writer, "\033[?25h")
	}
}

// clear deletes the last line. Caller must hold the lock.
func (pi *ProgressIndicator) clear() {
	if pi.lastOutput == "" {
		return
	}
	n := utf8.RuneCountInString(pi.lastOutput)
	if runtime.GOOS == "windows" {
		fmt.Fprint(pi.writer, "\r"+strings.Repeat(" ", n)+"\r")
		pi.lastOutput = ""
		return
	}
	for _, c := range []string{"\b", "\127", "\b", "\033[K"} { // "\033[K" for macOS Terminal
		fmt.Fprint(pi.writer, strings.Repeat(c, n))
	}
	fmt.Fprint(pi.writer, "\r\033[K")
	pi.lastOutput = ""
}
