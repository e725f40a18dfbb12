package gameforge

import "testing"

func TestClockTick(t *testing.T) {
	c := NewClock(100)
	c.Tick(30)
	if c.Elapsed() != 30 || c.Remaining() != 70 {
		t.Errorf("Elapsed/Remaining = %v/%v", c.Elapsed(), c.Remaining())
	}
	assertNear(t, "Progress", c.Progress(), 0.3)
	if c.Finished() {
		t.Error("should not be finished")
	}
	c.Tick(70)
	if !c.Finished() {
		t.Error("should be finished at elapsed == length")
	}
}

func TestClockProgressMonotonicAndClamped(t *testing.T) {
	c := NewClock(Second)
	prev := c.Progress()
	for i := 0; i < 100; i++ {
		c.Tick(17 * Millisecond)
		p := c.Progress()
		if p < prev {
			t.Fatalf("progress decreased: %v -> %v", prev, p)
		}
		if p > 1 {
			t.Fatalf("progress %v exceeds 1", p)
		}
		if c.Finished() && p != 1 {
			t.Fatalf("finished clock progress = %v, want 1", p)
		}
		prev = p
	}
	if !c.Finished() {
		t.Fatal("clock should be finished after 1.7s")
	}
}

func TestClockRemainingGoesNegative(t *testing.T) {
	c := NewClock(100)
	c.Tick(150)
	if c.Remaining() != -50 {
		t.Errorf("Remaining = %v, want -50", c.Remaining())
	}
}

func TestClockCallbackFiresOncePerCrossing(t *testing.T) {
	c := NewClock(100)
	calls := 0
	c.OnFinish(func() { calls++ })

	c.Tick(60)
	if calls != 0 {
		t.Fatalf("fired early: %d", calls)
	}
	c.Tick(60)
	c.Tick(60)
	c.Tick(60)
	if calls != 1 {
		t.Fatalf("calls = %d after overrunning, want 1", calls)
	}

	c.Restart()
	if c.Elapsed() != 0 || c.Length() != 100 {
		t.Errorf("Restart: elapsed=%v length=%v", c.Elapsed(), c.Length())
	}
	c.Tick(100)
	if calls != 2 {
		t.Errorf("calls = %d after restart, want 2", calls)
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock(100)
	c.Tick(80)
	c.Reset(500)
	if c.Length() != 500 || c.Elapsed() != 0 {
		t.Errorf("Reset: length=%v elapsed=%v", c.Length(), c.Elapsed())
	}
}

func TestClockSetLengthKeepsElapsed(t *testing.T) {
	c := NewClock(100)
	c.Tick(80)
	c.SetLength(50)
	if c.Elapsed() != 80 || !c.Finished() {
		t.Errorf("SetLength: elapsed=%v finished=%v", c.Elapsed(), c.Finished())
	}
}

func TestClockZeroLength(t *testing.T) {
	c := NewClock(0)
	if !c.Finished() {
		t.Error("zero-length clock should be finished")
	}
	if p := c.Progress(); p != 1 {
		t.Errorf("Progress = %v, want 1", p)
	}
	fired := false
	c.OnFinish(func() { fired = true })
	c.Tick(0)
	if !fired {
		t.Error("first tick of a zero-length clock should fire the callback")
	}
}

func TestClockZeroValue(t *testing.T) {
	var c Clock
	c.Reset(10)
	c.Tick(5)
	assertNear(t, "Progress", c.Progress(), 0.5)
}

func TestClockNegativeElapsedClampsProgress(t *testing.T) {
	c := NewClock(100)
	c.Tick(-30)

	if got := c.Progress(); got != 0 {
		t.Errorf("Progress = %v, want 0", got)
	}
	if c.Elapsed() != -30 || c.Remaining() != 130 {
		t.Errorf("Elapsed/Remaining = %v/%v, want -30/130", c.Elapsed(), c.Remaining())
	}

	p := NewLinearProcess(Float(10), Float(20), 100, nil)
	p.Update(-50)
	if got := p.Value(); got != 10 {
		t.Errorf("Value = %v, want start value 10", got)
	}
}
