package session

import "sync"

// EventType names a session state transition watchers care about.
type EventType string

const (
	EventGenerating     EventType = "generating"
	EventRecommendation EventType = "recommendation"
	EventError          EventType = "error"
	EventReset          EventType = "reset"
)

// Event is one broadcast state transition.
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message,omitempty"`
}

// broadcaster fans events out to subscribed watchers. Delivery is
// best-effort: a watcher that cannot keep up loses events rather than
// blocking session mutations.
type broadcaster struct {
	watchMu  sync.Mutex
	watchers map[chan Event]struct{}
}

// Subscribe registers a watcher. The returned cancel func must be called
// when the watcher goes away; it closes the channel.
func (b *broadcaster) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)
	b.watchMu.Lock()
	if b.watchers == nil {
		b.watchers = make(map[chan Event]struct{})
	}
	b.watchers[ch] = struct{}{}
	b.watchMu.Unlock()

	cancel := func() {
		b.watchMu.Lock()
		if _, ok := b.watchers[ch]; ok {
			delete(b.watchers, ch)
			close(ch)
		}
		b.watchMu.Unlock()
	}
	return ch, cancel
}

func (b *broadcaster) emit(ev Event) {
	b.watchMu.Lock()
	defer b.watchMu.Unlock()
	for ch := range b.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
}
