package clock

import "time"

// Cooldown enforces a minimum interval between successive firings.
// The zero value has never fired and is ready immediately.
type Cooldown struct {
	Interval time.Duration
	last     time.Time
	fired    bool
}

// NewCooldown creates a cooldown with the given interval
func NewCooldown(interval time.Duration) Cooldown {
	return Cooldown{Interval: interval}
}

// Ready reports whether strictly more than Interval has passed since the last firing
func (c *Cooldown) Ready(now time.Time) bool {
	if !c.fired {
		return true
	}
	return now.Sub(c.last) > c.Interval
}

// Fire records a firing at now
func (c *Cooldown) Fire(now time.Time) {
	c.last = now
	c.fired = true
}

// TryFire fires and returns true if the cooldown was ready
func (c *Cooldown) TryFire(now time.Time) bool {
	if !c.Ready(now) {
		return false
	}
	c.Fire(now)
	return true
}

// Last returns the time of the last firing and whether one happened
func (c *Cooldown) Last() (time.Time, bool) {
	return c.last, c.fired
}

// Deadline is an explicit "active until" window
type Deadline struct {
	until time.Time
}

// Arm opens the window for d starting at now
func (d *Deadline) Arm(now time.Time, dur time.Duration) {
	d.until = now.Add(dur)
}

// Active reports whether now is still inside the window
func (d *Deadline) Active(now time.Time) bool {
	return now.Before(d.until)
}

// Until returns the end of the window
func (d *Deadline) Until() time.Time {
	return d.until
}

// Clear closes the window
func (d *Deadline) Clear() {
	d.until = time.Time{}
}
