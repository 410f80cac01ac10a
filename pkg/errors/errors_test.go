package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

type recordingHandler struct {
	errs []*UIError
}

func (h *recordingHandler) HandleError(err *UIError) {
	h.errs = append(h.errs, err)
}

func TestUIErrorFormat(t *testing.T) {
	base := stderrors.New("slot 3 is stale")
	err := New("arena.Borrow", KindArena, base)
	if got := err.Error(); got != "arena.Borrow [arena]: slot 3 is stale" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(err, base) {
		t.Error("expected Unwrap to expose the underlying error")
	}
	if err.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
}

func TestFatalReportsAndPanics(t *testing.T) {
	h := &recordingHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Fatal did not panic")
		}
		err, ok := r.(*UIError)
		if !ok {
			t.Fatalf("panic value is %T, want *UIError", r)
		}
		if err.Kind != KindArena {
			t.Errorf("Kind = %v, want KindArena", err.Kind)
		}
		if len(h.errs) != 1 {
			t.Fatalf("handler got %d errors, want 1", len(h.errs))
		}
		if !strings.Contains(h.errs[0].Error(), "index 7") {
			t.Errorf("reported error = %q", h.errs[0].Error())
		}
	}()
	Fatal("arena.PutBack", KindArena, "index %d is occupied", 7)
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}
