package config

import "testing"

func TestDefaults(t *testing.T) {
	c := New()
	if c.AngleMode() != Radians {
		t.Errorf("default angle mode should be radians, got %s", c.AngleMode())
	}
	if c.FloatSigFigs() != 12 {
		t.Errorf("default float sig figs should be 12, got %d", c.FloatSigFigs())
	}
	if c.OutputBase() != 10 {
		t.Errorf("default output base should be 10, got %d", c.OutputBase())
	}
}

func TestNilConfigDefaults(t *testing.T) {
	var c *Config
	if c.AngleMode() != Radians {
		t.Errorf("nil config should default to radians")
	}
	if c.Debug("trace") {
		t.Errorf("nil config should never have debug flags enabled")
	}
}

func TestSetAngleMode(t *testing.T) {
	c := New()
	c.SetAngleMode(Degrees)
	if c.AngleMode() != Degrees {
		t.Errorf("got %s, want degrees", c.AngleMode())
	}
}

func TestSetDebug(t *testing.T) {
	c := New()
	c.SetDebug("poly", true)
	if !c.Debug("poly") {
		t.Errorf("expected poly debug trace to be enabled")
	}
	if c.Debug("other") {
		t.Errorf("unrelated debug trace should remain disabled")
	}
}
