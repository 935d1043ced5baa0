package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	info, ok := c.Info("phishing-basics")
	if !ok {
		t.Fatal("phishing-basics should exist")
	}
	if info.XP <= 0 {
		t.Errorf("module XP must be positive, got %d", info.XP)
	}

	if _, ok := c.Info("no-such-module"); ok {
		t.Error("unknown module should not resolve")
	}
	if xp := c.XPFor("no-such-module"); xp != 0 {
		t.Errorf("unknown module XP should be 0, got %d", xp)
	}
}
