package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// LoopEvent captures one poll loop event for post-mortem analysis
type LoopEvent struct {
	EventType uint8  // Event type code
	Phase     Phase  // Phase after the event
	Count     uint32 // Overflow events seen so far
}

// Event type codes
const (
	EvtStart  = 1 // Counter started
	EvtToggle = 2 // Overflow observed and outputs driven
	EvtFatal  = 3 // Boot aborted
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	// Disabled by default: the STM32 sink needs an attached debugger
	debugEnabled bool = false

	// Event capture ring buffer (non-blocking, for post-mortem)
	eventRing     [EventRingSize]LoopEvent
	eventRingHead uint8 // Next write position
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures a loop event in the ring buffer.
// It never allocates, so it is safe inside the poll loop.
func RecordEvent(eventType uint8, phase Phase, count uint32) {
	idx := eventRingHead
	eventRing[idx] = LoopEvent{
		EventType: eventType,
		Phase:     phase,
		Count:     count,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// DumpEventRing outputs the event ring buffer, oldest first
func DumpEventRing() {
	if !debugEnabled || debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")

	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		idx := (start + i) % EventRingSize
		evt := &eventRing[idx]
		if evt.EventType == 0 {
			continue // Empty slot
		}

		var name string
		switch evt.EventType {
		case EvtStart:
			name = "START"
		case EvtToggle:
			name = "TOGGLE"
		case EvtFatal:
			name = "FATAL"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[EVENTS] " + name +
			" phase=" + evt.Phase.String() +
			" count=" + utoa(evt.Count))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = LoopEvent{}
	}
	eventRingHead = 0
}

// LastEvent returns the most recently recorded event
func LastEvent() LoopEvent {
	return eventRing[(eventRingHead+EventRingSize-1)%EventRingSize]
}
