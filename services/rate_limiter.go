package services

import (
	"sync"
	"time"
)

const (
	loginWindow      = 15 * time.Minute
	maxLoginAttempts = 5
	lockoutDuration  = 30 * time.Minute
)

// attemptRecord tracks failed logins for one client IP within the current
// fixed window. A record is either windowed or locked, never both.
type attemptRecord struct {
	count        int
	firstAttempt time.Time
	lockedUntil  time.Time
}

// RateLimiter counts failed login attempts per client IP and locks an IP out
// for 30 minutes once it burns 5 attempts inside a 15-minute window. State is
// process memory only; a restart clears every record.
type RateLimiter struct {
	mu      sync.Mutex
	records map[string]*attemptRecord

	// swapped out in tests
	now func() time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		records: make(map[string]*attemptRecord),
		now:     time.Now,
	}
}

// Check reports whether ip may attempt a login right now. It returns a
// *RateLimitedError while the IP is locked out, and resets the record once
// the window has elapsed.
func (rl *RateLimiter) Check(ip string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rec, ok := rl.records[ip]
	if !ok {
		return nil
	}

	now := rl.now()

	if !rec.lockedUntil.IsZero() && now.Before(rec.lockedUntil) {
		remaining := rec.lockedUntil.Sub(now)
		// ceiling, so "1 minute" is shown until the lock actually expires
		minutes := int((remaining + time.Minute - 1) / time.Minute)
		return &RateLimitedError{MinutesLeft: minutes}
	}

	if now.Sub(rec.firstAttempt) > loginWindow {
		rec.count = 0
		rec.firstAttempt = now
		rec.lockedUntil = time.Time{}
		return nil
	}

	if rec.count >= maxLoginAttempts {
		rec.lockedUntil = now.Add(lockoutDuration)
		return &RateLimitedError{MinutesLeft: int(lockoutDuration / time.Minute)}
	}

	return nil
}

// RecordFailure increments the failure count for ip, creating a record
// anchored at the current time when none exists. It returns how many attempts
// remain before lockout, never below zero.
func (rl *RateLimiter) RecordFailure(ip string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rec, ok := rl.records[ip]
	if !ok {
		rec = &attemptRecord{firstAttempt: rl.now()}
		rl.records[ip] = rec
	}
	rec.count++

	left := maxLoginAttempts - rec.count
	if left < 0 {
		left = 0
	}
	return left
}

// Clear drops the record for ip entirely. Called after a successful login.
func (rl *RateLimiter) Clear(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.records, ip)
}
