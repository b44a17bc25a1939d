package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Colors for different log types
var (
	infoColor  = color.New(color.FgHiGreen)
	debugColor = color.New(color.FgHiYellow)
	errorColor = color.New(color.FgHiRed)
)

// Logger prints user-facing status lines and a spinner while requests are in flight
type Logger struct {
	debugMode bool
	out       io.Writer
	spinner   *spinner.Spinner // nil when out is not a terminal

	mu sync.Mutex
}

// NewLogger creates a Logger writing to out. The spinner is only shown
// when interactive is set.
func NewLogger(debugMode bool, out io.Writer, interactive bool) *Logger {
	l := &Logger{
		debugMode: debugMode,
		out:       out,
	}
	if interactive {
		l.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
		l.spinner.Color("cyan")
	}
	return l
}

// Debug logs a message only when debug mode is enabled
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.debugMode {
		return
	}
	l.print(debugColor, format, args...)
}

// Info logs a message regardless of debug mode
func (l *Logger) Info(format string, args ...interface{}) {
	l.print(infoColor, format, args...)
}

// Error logs an error message regardless of debug mode
func (l *Logger) Error(format string, args ...interface{}) {
	l.print(errorColor, "Error: "+format, args...)
}

// Wait shows the spinner with msg until the returned func is called
func (l *Logger) Wait(msg string) func() {
	if l.spinner == nil {
		return func() {}
	}

	l.mu.Lock()
	l.spinner.Suffix = " " + msg
	l.spinner.Start()
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.spinner.Active() {
			l.spinner.Stop()
		}
	}
}

func (l *Logger) print(c *color.Color, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Keep the spinner line from interleaving with the message
	restart := l.spinner != nil && l.spinner.Active()
	if restart {
		l.spinner.Stop()
	}

	message := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	c.Fprint(l.out, message)

	if restart {
		l.spinner.Start()
	}
}
