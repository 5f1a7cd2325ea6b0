package notify

import (
	"sync"
	"time"

	"github.com/osse101/MagicGarden_Go/internal/domain"
	"github.com/osse101/MagicGarden_Go/internal/metrics"
)

// Change describes a transition of the notification slot
type Change string

const (
	ChangePosted  Change = "posted"
	ChangeExpired Change = "expired"
)

// Listener observes slot transitions. It is called outside the channel lock.
type Listener func(change Change, n domain.Notification)

// Timer is the subset of *time.Timer the channel needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Channel is a single-slot, self-expiring notification surface.
// A new post replaces the visible notification immediately; each post
// expires on its own timer measured from its own post time.
type Channel struct {
	mu        sync.Mutex
	current   *domain.Notification
	gen       uint64
	timer     Timer
	window    time.Duration
	now       func() time.Time
	afterFunc AfterFunc
	listeners []Listener
	closed    bool
}

// Option configures a Channel
type Option func(*Channel)

// WithClock overrides the time source and timer factory
func WithClock(now func() time.Time, after AfterFunc) Option {
	return func(c *Channel) {
		c.now = now
		c.afterFunc = after
	}
}

// WithWindow overrides the expiry window
func WithWindow(d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.window = d
		}
	}
}

// NewChannel creates an empty channel with the default 3s window
func NewChannel(opts ...Option) *Channel {
	c := &Channel{
		window:    domain.NotificationWindow,
		now:       time.Now,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers a listener for posts and expiries
func (c *Channel) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Post replaces the live notification and arms its expiry
func (c *Channel) Post(kind domain.NotificationKind, message string) domain.Notification {
	c.mu.Lock()
	n := domain.Notification{Kind: kind, Message: message, PostedAt: c.now()}
	if c.closed {
		c.mu.Unlock()
		return n
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.current = &n
	c.timer = c.afterFunc(c.window, func() { c.expire(gen) })
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	metrics.NotificationsTotal.WithLabelValues(string(kind)).Inc()
	for _, l := range listeners {
		l(ChangePosted, n)
	}
	return n
}

// Current returns the live notification, if any
func (c *Channel) Current() (domain.Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return domain.Notification{}, false
	}
	return *c.current, true
}

// Close stops the pending timer and rejects further posts
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
	c.closed = true
}

// expire clears the slot only if no newer post has replaced generation gen
func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.current == nil {
		c.mu.Unlock()
		return
	}
	n := *c.current
	c.current = nil
	c.timer = nil
	listeners := c.snapshotListeners()
	c.mu.Unlock()

	for _, l := range listeners {
		l(ChangeExpired, n)
	}
}

func (c *Channel) snapshotListeners() []Listener {
	out := make([]Listener, len(c.listeners))
	copy(out, c.listeners)
	return out
}
