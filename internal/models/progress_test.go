package models

import "testing"

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{-5, 1},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.totalXP); got != tc.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tc.totalXP, got, tc.want)
		}
	}
}

func TestEnsureModule(t *testing.T) {
	p := &UserProgress{}

	m := p.EnsureModule("phishing-basics")
	if m.ModuleID != "phishing-basics" {
		t.Fatalf("unexpected module id %q", m.ModuleID)
	}
	if len(p.Modules) != 1 {
		t.Fatalf("expected 1 module entry, got %d", len(p.Modules))
	}

	m.XPEarned = 50
	again := p.EnsureModule("phishing-basics")
	if again.XPEarned != 50 {
		t.Error("EnsureModule should return the existing entry, not a copy")
	}
	if len(p.Modules) != 1 {
		t.Errorf("repeat EnsureModule must not duplicate, got %d entries", len(p.Modules))
	}
}

func TestAllAttempts(t *testing.T) {
	p := &UserProgress{
		Modules: []CompletedModule{
			{ModuleID: "a", Attempts: []QuizAttempt{{QuizID: "a1"}, {QuizID: "a2"}}},
			{ModuleID: "b", Attempts: []QuizAttempt{{QuizID: "b1"}}},
		},
	}
	attempts := p.AllAttempts()
	if len(attempts) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(attempts))
	}
}
