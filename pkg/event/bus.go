package event

// Topics published by the automaton core.
const (
	// TopicTick fires once per completed generation advance.
	TopicTick = "net.tick"
	// TopicMutation fires when a live cell's state changes in place.
	TopicMutation = "cell.mutation"
)

// Handler is a subscriber callback. Topics carry no payload.
type Handler func()

// Bus is a synchronous, in-process publish/subscribe channel. Publish runs
// every subscriber on the caller's goroutine, in subscription order, before
// it returns, so viewers never observe a half-advanced net. A nil *Bus is
// valid and drops everything.
type Bus struct {
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers fn for topic. Subscriptions are permanent.
func (b *Bus) Subscribe(topic string, fn Handler) {
	if b == nil || fn == nil {
		return
	}
	b.handlers[topic] = append(b.handlers[topic], fn)
}

// Publish invokes every subscriber of topic.
func (b *Bus) Publish(topic string) {
	if b == nil {
		return
	}
	for _, fn := range b.handlers[topic] {
		fn()
	}
}
