package errors

import (
	"runtime"
	"strings"
	"sync"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler Handler = &LogHandler{}

	handlerMu sync.RWMutex
)

// Handler receives errors reported by the UI core.
type Handler interface {
	HandleError(err *UIError)
}

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
func Report(err *UIError) {
	if err == nil {
		return
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// captureStack returns the current call stack, skipping frames inside
// this package.
func captureStack() string {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	stack := string(buf[:n])

	lines := strings.Split(stack, "\n")
	var filtered []string
	skip := 0
	for i, line := range lines {
		if strings.Contains(line, "pkg/errors.") {
			skip = i + 2
		}
	}
	if skip < len(lines) {
		filtered = lines[skip:]
	}
	if len(filtered) == 0 {
		return stack
	}
	return strings.Join(filtered, "\n")
}
