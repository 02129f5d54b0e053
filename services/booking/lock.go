package booking

import (
	"context"
	"sort"
	"sync"
)

// Locker serializes check-then-write sequences on a set of keys.
type Locker interface {
	// Lock blocks until every key is held or ctx ends. The returned func releases them.
	Lock(ctx context.Context, keys ...string) (func(), error)
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// LocalLocker serializes within one process.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	ordered := sortedUnique(keys)
	held := make([]string, 0, len(ordered))
	unlock := func() {
		for i := len(held) - 1; i >= 0; i-- {
			l.release(held[i], true)
		}
	}
	for _, key := range ordered {
		if err := l.acquire(ctx, key); err != nil {
			unlock()
			return nil, err
		}
		held = append(held, key)
	}
	return unlock, nil
}

func (l *LocalLocker) acquire(ctx context.Context, key string) error {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.release(key, false)
		return ctx.Err()
	}
}

func (l *LocalLocker) release(key string, held bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl := l.locks[key]
	if held {
		<-kl.ch
	}
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

func sortedUnique(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup || k == "" {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
