package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// fakeCmdable records SET calls and answers EXISTS from memory. Any other
// command panics through the nil embedded interface.
type fakeCmdable struct {
	redis.Cmdable
	keys   map[string]time.Duration
	setErr error
}

func (f *fakeCmdable) Set(_ context.Context, key string, _ interface{}, ttl time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.keys[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.keys[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func newTestList(now time.Time) (*RevocationList, *fakeCmdable) {
	fake := &fakeCmdable{keys: map[string]time.Duration{}}
	l := NewRevocationList(fake)
	l.now = func() time.Time { return now }
	return l, fake
}

func TestRevocationList_RevokeThenCheck(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l, fake := newTestList(now)

	if err := l.Revoke(context.Background(), "jti-1", now.Add(time.Hour)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if ttl := fake.keys["revoked:jti-1"]; ttl != time.Hour {
		t.Fatalf("expected ttl 1h, got %v", ttl)
	}

	revoked, err := l.IsRevoked(context.Background(), "jti-1")
	if err != nil || !revoked {
		t.Fatalf("expected jti-1 revoked, got %v, %v", revoked, err)
	}
	revoked, _ = l.IsRevoked(context.Background(), "jti-2")
	if revoked {
		t.Fatalf("jti-2 must not be revoked")
	}
}

func TestRevocationList_SkipsExpiredTokens(t *testing.T) {
	now := time.Now()
	l, fake := newTestList(now)

	if err := l.Revoke(context.Background(), "old", now.Add(-time.Second)); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if len(fake.keys) != 0 {
		t.Fatalf("expected no key for an expired token, got %v", fake.keys)
	}
}

func TestRevocationList_PropagatesErrors(t *testing.T) {
	now := time.Now()
	l, fake := newTestList(now)
	fake.setErr = errors.New("READONLY")

	if err := l.Revoke(context.Background(), "jti", now.Add(time.Minute)); !errors.Is(err, fake.setErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
