package parameter

import "time"

// Loop timing
const (
	// FrameInterval is the render and tick cadence (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between poller and loop
	EventChannelSize = 256

	// EventQueueSize is the per-tick game event capacity, must be power of 2
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1

	// HoldWindow keeps a direction held after its last key repeat
	HoldWindow = 120 * time.Millisecond
)
