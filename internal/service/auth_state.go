package service

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const authStateCacheSize = 1024 * 1024 // freecache minimum is 512KB

// clockTimer feeds freecache expiry from the service clock.
type clockTimer func() time.Time

func (c clockTimer) Now() uint32 {
	return uint32(c().Unix())
}

// ttlSeconds rounds d up to whole seconds, the resolution freecache expires at.
func ttlSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

// loginLimiter counts failed sign-ins per email. The window opens with the
// first failure and the counter disappears when it closes.
type loginLimiter struct {
	mu          sync.Mutex // serializes read-modify-write of a counter
	cache       *freecache.Cache
	clock       func() time.Time
	maxFailures int
	window      time.Duration
}

func newLoginLimiter(maxFailures int, window time.Duration, clock func() time.Time) *loginLimiter {
	return &loginLimiter{
		cache:       freecache.NewCacheCustomTimer(authStateCacheSize, clockTimer(clock)),
		clock:       clock,
		maxFailures: maxFailures,
		window:      window,
	}
}

// Locked reports whether email has reached the failure limit within the window.
func (l *loginLimiter) Locked(email string) bool {
	return l.failures(email) >= l.maxFailures
}

func (l *loginLimiter) failures(email string) int {
	value, err := l.cache.Get([]byte(email))
	if err != nil {
		return 0
	}
	count, err := strconv.Atoi(string(value))
	if err != nil {
		return 0
	}
	return count
}

func (l *loginLimiter) Fail(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := []byte(email)
	ttl := ttlSeconds(l.window)
	count := 1
	if value, expireAt, err := l.cache.GetWithExpiration(key); err == nil {
		if n, convErr := strconv.Atoi(string(value)); convErr == nil {
			count = n + 1
		}
		// keep the window anchored at the first failure
		if remaining := int(expireAt) - int(l.clock().Unix()); remaining > 0 {
			ttl = remaining
		}
	}
	if err := l.cache.Set(key, []byte(strconv.Itoa(count)), ttl); err != nil {
		log.Warnf("failed to record sign-in failure for %s: %v", email, err)
	}
}

func (l *loginLimiter) Reset(email string) {
	l.cache.Del([]byte(email))
}

// revocationList remembers signed-out token ids until they expire.
type revocationList struct {
	cache *freecache.Cache
	clock func() time.Time
}

func newRevocationList(clock func() time.Time) *revocationList {
	return &revocationList{
		cache: freecache.NewCacheCustomTimer(authStateCacheSize, clockTimer(clock)),
		clock: clock,
	}
}

// Revoke is a no-op for tokens that have already expired.
func (r *revocationList) Revoke(tokenID string, expiresAt time.Time) {
	ttl := ttlSeconds(expiresAt.Sub(r.clock()))
	if ttl <= 0 {
		return
	}
	if err := r.cache.Set([]byte(tokenID), []byte{1}, ttl); err != nil {
		log.Warnf("failed to revoke token %s: %v", tokenID, err)
	}
}

func (r *revocationList) IsRevoked(tokenID string) bool {
	_, err := r.cache.Get([]byte(tokenID))
	if err != nil && !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("revocation lookup for token %s failed: %v", tokenID, err)
	}
	return err == nil
}
