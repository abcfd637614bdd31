package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/NetPo4ki/go-guard/worker"
)

func TestObserverLogsLifecycle(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	obs := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	h := worker.Launch(func() {}, worker.WithName("copier"), worker.WithObserver(obs))
	h.Join()

	out := buf.String()
	for _, want := range []string{"worker started", "worker finished", "worker joined", "worker=copier"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestObserverWarnsOnPanicAndDetach(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	obs := New(slog.New(slog.NewTextHandler(&buf, nil))) // default level: Info

	obs.WorkerFinished("w", time.Millisecond, true)
	obs.WorkerDetached("w")

	out := buf.String()
	if !strings.Contains(out, "worker panicked") || !strings.Contains(out, "worker detached") {
		t.Fatalf("expected warn-level panic/detach entries, got:\n%s", out)
	}
	if strings.Contains(out, "worker finished") {
		t.Fatalf("panicked finish should not log the normal finish entry:\n%s", out)
	}
}

func TestNewNilLoggerUsesDefault(t *testing.T) {
	t.Parallel()
	if New(nil) == nil {
		t.Fatal("expected a usable observer")
	}
}
