package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{SevereLevel, "SEVERE"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Order(t *testing.T) {
	if !(InfoLevel < WarningLevel && WarningLevel < SevereLevel && SevereLevel < ErrorLevel) {
		t.Error("levels are not ordered INFO < WARNING < SEVERE < ERROR")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"info", InfoLevel, true},
		{"WARN", WarningLevel, true},
		{"Warning", WarningLevel, true},
		{"severe", SevereLevel, true},
		{" error ", ErrorLevel, true},
		{"debug", InfoLevel, false},
		{"", InfoLevel, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	if e1 == nil {
		t.Fatal("GetEntry() returned nil")
	}

	e1.Message = "test"
	e1.Source = "Demo"
	e1.Caller = CallerInfo{Line: 10, Defined: true}

	PutEntry(e1)

	e2 := GetEntry()
	if e2 == nil {
		t.Fatal("GetEntry() returned nil after PutEntry()")
	}
	if e2.Message != "" || e2.Source != "" {
		t.Errorf("Expected clean entry after pool reset, got %+v", e2)
	}
	if e2.Caller.Defined {
		t.Error("Expected caller to be reset")
	}
	if e2.Time.IsZero() {
		t.Error("Expected GetEntry to stamp the entry")
	}

	PutEntry(nil)
}

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if caller.ShortFile != "entry_test.go" {
		t.Errorf("Expected entry_test.go, got %q", caller.ShortFile)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if !strings.HasSuffix(caller.Function, "TestGetCaller") {
		t.Errorf("Expected function TestGetCaller, got %q", caller.Function)
	}
}

func TestGetCaller_OutOfRange(t *testing.T) {
	if caller := GetCaller(10000); caller.Defined {
		t.Errorf("Expected undefined caller, got %+v", caller)
	}
}

func TestCallerFromPC(t *testing.T) {
	if c := CallerFromPC(0); c.Defined {
		t.Error("Expected zero PC to yield undefined caller")
	}
}

func TestCaptureStack(t *testing.T) {
	frames := CaptureStack(0)
	if len(frames) == 0 {
		t.Fatal("CaptureStack returned no frames")
	}
	if !strings.HasSuffix(frames[0].Function, "TestCaptureStack") {
		t.Errorf("Expected first frame to be the test, got %q", frames[0].Function)
	}
	if !strings.Contains(frames[0].String(), "(entry_test.go:") {
		t.Errorf("Unexpected frame rendering %q", frames[0].String())
	}
}

func TestWithStack(t *testing.T) {
	if WithStack(nil) != nil {
		t.Error("WithStack(nil) should be nil")
	}

	base := errors.New("boom")
	err := WithStack(base)
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want boom", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("Expected wrapped error to unwrap to base")
	}

	var st StackTracer
	if !errors.As(err, &st) {
		t.Fatal("Expected error to expose StackFrames")
	}
	frames := st.StackFrames()
	if len(frames) == 0 || !strings.HasSuffix(frames[0].Function, "TestWithStack") {
		t.Errorf("Expected stack to start at the test, got %v", frames)
	}
}

func TestFrame_String(t *testing.T) {
	f := Frame{Function: "main.run", File: "/src/app/main.go", Line: 12}
	if got, want := f.String(), "main.run(main.go:12)"; got != want {
		t.Errorf("Frame.String() = %q, want %q", got, want)
	}
}

func TestFixedClock(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 0, time.UTC)
	if got := Fixed(ts)(); !got.Equal(ts) {
		t.Errorf("Fixed clock = %v, want %v", got, ts)
	}
	if SystemClock().IsZero() {
		t.Error("SystemClock returned zero time")
	}
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}

func BenchmarkGetCaller(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = GetCaller(1)
	}
}
