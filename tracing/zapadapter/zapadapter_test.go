package zapadapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceLevels(t *testing.T) {
	var buf bytes.Buffer
	tr := New()
	tr.SetOutput(&buf)
	tr.SetTraceLevel(tracing.LevelInfo)
	tr.Debugf("Hello 1")
	tr.Infof("Hello %d", 2)
	tr.SetTraceLevel(tracing.LevelError)
	tr.Infof("Hello 3")
	tr.Errorf("Hello 4")
	out := buf.String()
	t.Logf("trace output:\n%s", out)
	if strings.Contains(out, "Hello 1") || strings.Contains(out, "Hello 3") {
		t.Errorf("expected messages below trace level to be suppressed")
	}
	if !strings.Contains(out, "Hello 2") || !strings.Contains(out, "Hello 4") {
		t.Errorf("expected messages at trace level to be written")
	}
	if tr.GetTraceLevel() != tracing.LevelError {
		t.Errorf("expected trace level Error, have %v", tr.GetTraceLevel())
	}
}

func TestParameterDoesNotLeakToOtherCallers(t *testing.T) {
	var buf bytes.Buffer
	tr := New()
	tr.SetOutput(&buf)
	withTag := tr.P("tag", "view")
	tr.Infof("without context")
	withTag.Infof("with context")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines of output, have %d", len(lines))
	}
	if strings.Contains(lines[0], "tag") {
		t.Errorf("expected no context field for plain tracer, have %q", lines[0])
	}
	if !strings.Contains(lines[1], "tag") || !strings.Contains(lines[1], "view") {
		t.Errorf("expected context field in second line, have %q", lines[1])
	}
}

func TestParameterSharesTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := New()
	tr.SetOutput(&buf)
	withTag := tr.P("tag", "view")
	tr.SetTraceLevel(tracing.LevelError)
	withTag.Infof("suppressed")
	withTag.Errorf("written")
	out := buf.String()
	if strings.Contains(out, "suppressed") || !strings.Contains(out, "written") {
		t.Errorf("expected derived tracer to follow trace level, have %q", out)
	}
}

func TestNewWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tr := NewWithLogger(zap.New(core))
	tr.Debugf("debug")
	tr.SetTraceLevel(tracing.LevelInfo)
	tr.Debugf("suppressed")
	tr.P("k", 1).Infof("info")
	if logs.Len() != 2 {
		t.Fatalf("expected 2 log entries, have %d", logs.Len())
	}
	entry := logs.All()[1]
	if entry.Message != "info" || entry.ContextMap()["k"] != int64(1) {
		t.Errorf("unexpected log entry %+v", entry)
	}
}

func TestAdapter(t *testing.T) {
	adapter := GetAdapter()
	if _, ok := adapter().(*Tracer); !ok {
		t.Errorf("expected adapter to create zap tracers")
	}
}
