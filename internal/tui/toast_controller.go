package tui

import (
	"time"

	"github.com/colonyops/eventboard/internal/core/notify"
)

const (
	defaultToastTTL   = 5 * time.Second
	errorToastTTL     = 8 * time.Second
	defaultMaxToasts  = 4
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 44
)

type toast struct {
	notification notify.Notification
	remaining    time.Duration
	// repeats counts identical notifications folded into this toast.
	repeats int
}

// ttlFor returns how long a toast of the given level stays on screen.
// Errors linger so a failed load is not missed.
func ttlFor(level notify.Level) time.Duration {
	if level == notify.LevelError {
		return errorToastTTL
	}
	return defaultToastTTL
}

// ToastController manages the lifecycle of active toast notifications.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notification to the toast stack, evicting the oldest toast
// beyond defaultMaxToasts. A notification equal in level and message to the
// newest toast is folded into it and restarts its TTL.
func (c *ToastController) Push(n notify.Notification) {
	if last := len(c.toasts) - 1; last >= 0 {
		t := &c.toasts[last]
		if t.notification.Level == n.Level && t.notification.Message == n.Message {
			t.repeats++
			t.remaining = ttlFor(n.Level)
			return
		}
	}

	c.toasts = append(c.toasts, toast{
		notification: n,
		remaining:    ttlFor(n.Level),
	})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) DismissAll()       { c.toasts = c.toasts[:0] }
func (c *ToastController) HasToasts() bool   { return len(c.toasts) > 0 }
func (c *ToastController) Toasts() []toast   { return c.toasts }
func (c *ToastController) Ticking() bool     { return c.ticking }
func (c *ToastController) SetTicking(v bool) { c.ticking = v }
