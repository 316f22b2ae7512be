package cli

import (
	"bytes"
	"io"
	"testing"
)

// MockSpinner for testing
type MockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.suffix = suffix
}

func TestNewSpinner_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf)
	if _, ok := s.(nopSpinner); !ok {
		t.Fatalf("expected nopSpinner for a buffer, got %T", s)
	}
	s.Start()
	s.UpdateSuffix("working")
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("nop spinner should not write, got %q", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	if IsTerminal(io.Discard) {
		t.Error("io.Discard is not a terminal")
	}
}

func TestNewSpinner_Override(t *testing.T) {
	orig := newSpinner
	defer func() { newSpinner = orig }()

	mockS := &MockSpinner{}
	newSpinner = func(io.Writer) Spinner { return mockS }

	s := newSpinner(io.Discard)
	s.Start()
	s.UpdateSuffix(" .count")
	s.Stop()

	if !mockS.started || !mockS.stopped || mockS.suffix != " .count" {
		t.Errorf("unexpected spinner state %+v", mockS)
	}
}

func TestRealSpinner_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(&buf)
	s.UpdateSuffix(" working")
	s.Start()
	s.Stop()
}
