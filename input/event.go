// Package input models the six-key keypad and derives press, long and repeat
// events from host key state
package input

// Key identifies one keypad button
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyOK
	KeyBack

	keyCount
)

var keyNames = [keyCount]string{"Up", "Down", "Left", "Right", "OK", "Back"}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// Type is the kind of key event
type Type uint8

const (
	TypePress   Type = iota // key went down
	TypeRelease             // key went up
	TypeShort               // released before the long press delay
	TypeLong                // held past the long press delay, sent once
	TypeRepeat              // held, sent periodically after TypeLong
)

var typeNames = [...]string{"Press", "Release", "Short", "Long", "Repeat"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Event is a single key event delivered to the session
type Event struct {
	Key  Key
	Type Type
}

func (e Event) String() string {
	return e.Key.String() + "/" + e.Type.String()
}

// IsStep reports whether the event advances a stepped value: a press or an auto-repeat
func (e Event) IsStep() bool {
	return e.Type == TypePress || e.Type == TypeRepeat
}
