package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a status line with the elapsed time while a long
// computation runs. It stops by itself when its context is cancelled.
type spinner struct {
	w       io.Writer
	message string
	start   time.Time

	mu      sync.Mutex // guards writes to w
	once    sync.Once
	done    chan struct{}
	stopped chan struct{}
}

// startSpinner starts animating message on w.
func startSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	s := &spinner{
		w:       w,
		message: message,
		start:   time.Now(),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.run(ctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			s.clear()
			return
		case <-s.done:
			return
		case <-ticker.C:
			elapsed := time.Since(s.start).Truncate(100 * time.Millisecond)
			s.mu.Lock()
			fmt.Fprintf(s.w, "\r%s %s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]),
				StyleDim.Render(s.message), StyleDim.Render(elapsed.String()))
			s.mu.Unlock()
		}
	}
}

// Stop ends the animation and clears the line. Calling it again is a no-op.
func (s *spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		<-s.stopped
		s.clear()
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(format, args...)
}

// StopWithError stops the spinner and prints an error line.
func (s *spinner) StopWithError(format string, args ...any) {
	s.Stop()
	printError(format, args...)
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+16))
}
