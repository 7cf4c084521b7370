package inputs

import "fmt"

// Key identifies the keys the application reacts to. Window backends map
// their own key codes onto these and report everything else as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyL
	KeyR
	KeyG
	KeyB
	KeyW
	KeyK
	KeyF5
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyL:       "L",
	KeyR:       "R",
	KeyG:       "G",
	KeyB:       "B",
	KeyW:       "W",
	KeyK:       "K",
	KeyF5:      "F5",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Event is one of Resize, KeyPress, KeyRelease or Other.
type Event interface {
	isEvent()
}

// Resize reports a new framebuffer size in pixels.
type Resize struct {
	Width, Height int
}

type KeyPress struct {
	Key Key
}

type KeyRelease struct {
	Key Key
}

// Other stands for any window event the dispatcher ignores.
type Other struct{}

func (Resize) isEvent()     {}
func (KeyPress) isEvent()   {}
func (KeyRelease) isEvent() {}
func (Other) isEvent()      {}

// Queue buffers events between the window callbacks and the next frame.
type Queue struct {
	events []Event
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *Queue) Len() int { return len(q.events) }

// Drain returns the queued events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}
