package session

// DefaultRestSeconds is the rest countdown started whenever a set is
// completed.
const DefaultRestSeconds = 90

// RestTimer is the per-completion rest countdown. It is observational only:
// it never touches session data. States are idle (remaining 0) and counting
// (remaining > 0); a new completion while counting restarts the countdown,
// it never stacks.
type RestTimer struct {
	remaining int
}

// Start begins (or restarts) the countdown at DefaultRestSeconds.
func (t *RestTimer) Start() {
	t.remaining = DefaultRestSeconds
}

// Tick advances the countdown by one second. Once the countdown reaches 0
// the timer returns to idle. Ticking an idle timer is a no-op.
func (t *RestTimer) Tick() {
	if t.remaining > 0 {
		t.remaining--
	}
}

// Active reports whether a countdown is running.
func (t *RestTimer) Active() bool {
	return t.remaining > 0
}

// Remaining returns the seconds left, 0 when idle.
func (t *RestTimer) Remaining() int {
	return t.remaining
}

// Reset clears the countdown, returning the timer to idle.
func (t *RestTimer) Reset() {
	t.remaining = 0
}
