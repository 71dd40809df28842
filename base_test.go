package docbase

import (
	"regexp"
	"testing"
	"time"

	metrics "github.com/armon/go-metrics"
	"github.com/willibrandon/docbase/core"
	"github.com/willibrandon/docbase/testutil"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)}
}

func TestNewBaseStartsDefaultTimer(t *testing.T) {
	f, _, _ := newTestFacility("debug")
	clock := newFakeClock()
	b := NewBase(f, WithClock(clock.Now))

	elapsed, err := b.ElapsedTime(DefaultTimer)
	testutil.AssertNoError(t, err, "default timer")
	testutil.AssertEqual(t, elapsed, time.Duration(0), "elapsed")

	clock.Advance(250 * time.Millisecond)
	elapsed, err = b.ElapsedTime("")
	testutil.AssertNoError(t, err, "empty name")
	testutil.AssertEqual(t, elapsed, 250*time.Millisecond, "elapsed via empty name")
}

func TestResetThenElapsed(t *testing.T) {
	f, _, _ := newTestFacility("debug")
	b := NewBase(f)

	b.ResetTimer("t")
	elapsed, err := b.ElapsedTime("t")
	testutil.AssertNoError(t, err, "elapsed")
	if elapsed < 0 || elapsed >= 50*time.Millisecond {
		t.Errorf("Expected elapsed in [0, 50ms), got %v", elapsed)
	}
}

func TestResetTimerOverwrites(t *testing.T) {
	f, _, _ := newTestFacility("debug")
	clock := newFakeClock()
	b := NewBase(f, WithClock(clock.Now))

	b.ResetTimer("parse")
	clock.Advance(3 * time.Second)
	b.ResetTimer("parse")
	clock.Advance(time.Second)

	elapsed, err := b.ElapsedTime("parse")
	testutil.AssertNoError(t, err, "elapsed")
	testutil.AssertEqual(t, elapsed, time.Second, "elapsed since second reset")
}

func TestElapsedTimeUnknown(t *testing.T) {
	f, _, _ := newTestFacility("debug")
	b := NewBase(f)

	_, err := b.ElapsedTime("never-started")
	testutil.AssertErrorIs(t, err, ErrUnknownTimer, "unknown timer")
}

func TestDebugTimer(t *testing.T) {
	f, memory, _ := newTestFacility("debug")
	clock := newFakeClock()
	b := NewBase(f, WithClock(clock.Now))

	b.ResetTimer("t")
	clock.Advance(1500 * time.Millisecond)
	before, _ := b.ElapsedTime("t")

	testutil.AssertNoError(t, b.DebugTimer("x", "t"), "debug timer")

	messages := memory.Messages(testutil.ErrorFile)
	testutil.AssertMessages(t, messages, "x in 1.5000 seconds")
	pattern := regexp.MustCompile(`^x in \d+\.\d{4} seconds$`)
	if !pattern.MatchString(messages[0]) {
		t.Errorf("Message %q does not match %s", messages[0], pattern)
	}

	after, err := b.ElapsedTime("t")
	testutil.AssertNoError(t, err, "elapsed after")
	if after >= before {
		t.Errorf("Expected timer to be reset: before %v, after %v", before, after)
	}

	testutil.AssertMessages(t, memory.Messages(testutil.PrimaryFile))
	testutil.AssertMessages(t, memory.Messages(core.StdoutDestination))
}

func TestDebugTimerRealClock(t *testing.T) {
	f, memory, _ := newTestFacility("debug")
	b := NewBase(f)

	time.Sleep(5 * time.Millisecond)
	testutil.AssertNoError(t, b.DebugTimer("generated pages", ""), "debug timer")

	messages := memory.Messages(testutil.ErrorFile)
	testutil.AssertEqual(t, len(messages), 1, "message count")
	if !regexp.MustCompile(`^generated pages in \d+\.\d{4} seconds$`).MatchString(messages[0]) {
		t.Errorf("Unexpected message %q", messages[0])
	}
}

func TestDebugTimerUnknown(t *testing.T) {
	f, memory, _ := newTestFacility("debug")
	b := NewBase(f)

	testutil.AssertErrorIs(t, b.DebugTimer("x", "missing"), ErrUnknownTimer, "unknown timer")
	testutil.AssertEqual(t, memory.Opened(testutil.ErrorFile), 0, "debug sink opened")
}

func TestDebugTimerFiltered(t *testing.T) {
	f, memory, _ := newTestFacility("info")
	clock := newFakeClock()
	b := NewBase(f, WithClock(clock.Now))

	clock.Advance(time.Second)
	testutil.AssertNoError(t, b.DebugTimer("quiet", ""), "debug timer")
	testutil.AssertMessages(t, memory.Messages(testutil.ErrorFile))

	elapsed, _ := b.ElapsedTime("")
	testutil.AssertEqual(t, elapsed, time.Duration(0), "timer reset even when filtered")
}

func TestTimersAreIsolated(t *testing.T) {
	f, _, _ := newTestFacility("debug")
	clock := newFakeClock()
	first := NewBase(f, WithClock(clock.Now))
	second := NewBase(f, WithClock(clock.Now))

	first.ResetTimer("t")
	clock.Advance(2 * time.Second)
	second.ResetTimer("t")
	clock.Advance(time.Second)

	e1, err := first.ElapsedTime("t")
	testutil.AssertNoError(t, err, "first")
	e2, err := second.ElapsedTime("t")
	testutil.AssertNoError(t, err, "second")
	testutil.AssertEqual(t, e1, 3*time.Second, "first elapsed")
	testutil.AssertEqual(t, e2, time.Second, "second elapsed")

	first.ResetTimer("only-first")
	_, err = second.ElapsedTime("only-first")
	testutil.AssertErrorIs(t, err, ErrUnknownTimer, "timer from another instance")
}

func TestDebugTimerMetrics(t *testing.T) {
	sink := metrics.NewInmemSink(time.Minute, time.Minute)
	conf := metrics.DefaultConfig("docbase")
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	m, err := metrics.New(conf, sink)
	testutil.AssertNoError(t, err, "metrics")

	memory := testutil.NewMemorySinks()
	f := New(
		WithLoader(&testutil.StaticLoader{Config: testutil.NewConfig("debug")}),
		WithSinkOpener(memory.Open),
		WithMetrics(m),
	)
	clock := newFakeClock()
	b := NewBase(f, WithClock(clock.Now))

	clock.Advance(1500 * time.Millisecond)
	testutil.AssertNoError(t, b.DebugTimer("render", "render"), "debug timer")

	data := sink.Data()
	if len(data) == 0 {
		t.Fatal("Expected an interval")
	}
	sample, ok := data[len(data)-1].Samples["docbase.timer.render"]
	if !ok {
		t.Fatalf("Expected sample docbase.timer.render, got %v", data[len(data)-1].Samples)
	}
	testutil.AssertEqual(t, sample.Count, 1, "sample count")
	testutil.AssertEqual(t, sample.Sum, float64(1500), "sample milliseconds")
}

func TestBaseDelegates(t *testing.T) {
	f, memory, loader := newTestFacility("info")
	b := NewBase(f)

	if b.Facility() != f {
		t.Fatal("Expected base to use the given facility")
	}

	testutil.AssertNoError(t, b.SetLogLevel("notice"), "set level")
	level, err := b.LogLevel()
	testutil.AssertNoError(t, err, "level")
	testutil.AssertEqual(t, level, core.NoticeSeverity, "level")

	testutil.AssertNoError(t, b.Log("from base", core.NoticeSeverity), "log")
	testutil.AssertNoError(t, b.Debug("hidden"), "debug")
	testutil.AssertMessages(t, memory.Messages(testutil.PrimaryFile), "from base")
	testutil.AssertMessages(t, memory.Messages(testutil.ErrorFile))

	c, err := b.Config()
	testutil.AssertNoError(t, err, "config")
	testutil.AssertEqual(t, c, loader.Config, "config")
}

func TestNewBaseUsesDefault(t *testing.T) {
	f, _, _ := newTestFacility("info")
	prev := SetDefault(f)
	defer SetDefault(prev)

	if NewBase(nil).Facility() != f {
		t.Fatal("Expected NewBase(nil) to use the default facility")
	}
}
