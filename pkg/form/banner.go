package form

import (
	"sync"
	"time"
)

// Notice is the success payload handed to the Notifier: the message to show
// and how long to show it for.
type Notice struct {
	Message  string
	Duration time.Duration
}

// Notifier receives the success notice after a fully-valid submission.
type Notifier interface {
	Notify(Notice)
}

// Banner is the default Notifier: it holds the active notice and removes it
// after the notice's display duration with a one-shot timer. The timer is
// not cancellable; a stale timer firing after a newer notice appeared is
// ignored via a generation counter.
type Banner struct {
	mu     sync.RWMutex
	active *Notice
	gen    uint64
}

// NewBanner creates a banner with no active notice.
func NewBanner() *Banner {
	return &Banner{}
}

// Notify shows the notice and schedules its removal after n.Duration.
// A non-positive duration shows the notice without scheduling removal.
func (b *Banner) Notify(n Notice) {
	b.mu.Lock()
	b.active = &n
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	if n.Duration <= 0 {
		return
	}

	time.AfterFunc(n.Duration, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.gen == gen {
			b.active = nil
		}
	})
}

// Active returns the currently displayed notice, if any.
func (b *Banner) Active() (Notice, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.active == nil {
		return Notice{}, false
	}
	return *b.active, true
}
