package service

import (
	"testing"
	"time"
)

func TestRateLimiterFixedWindow(t *testing.T) {
	limiter := NewRateLimiter(time.Hour, 3)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("1.2.3.4|a@b.c", now) {
			t.Fatalf("hit %d should be allowed", i+1)
		}
	}
	if limiter.Allow("1.2.3.4|a@b.c", now.Add(time.Minute)) {
		t.Error("fourth hit inside the window should be blocked")
	}

	// a different key is unaffected
	if !limiter.Allow("5.6.7.8|x@y.z", now) {
		t.Error("other keys must have their own window")
	}

	// old timestamps age out of the window
	if !limiter.Allow("1.2.3.4|a@b.c", now.Add(61*time.Minute)) {
		t.Error("hits older than the window should no longer count")
	}
}

func TestRateLimiterBlockedHitDoesNotExtendWindow(t *testing.T) {
	limiter := NewRateLimiter(time.Hour, 1)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	if !limiter.Allow("k", now) {
		t.Fatal("first hit should pass")
	}
	// rejected attempts are not recorded
	for i := 1; i <= 5; i++ {
		if limiter.Allow("k", now.Add(time.Duration(i)*time.Minute)) {
			t.Fatalf("hit at minute %d should be blocked", i)
		}
	}
	if !limiter.Allow("k", now.Add(61*time.Minute)) {
		t.Error("window should reset one hour after the recorded hit")
	}
}
