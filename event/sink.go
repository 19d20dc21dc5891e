package event

// Sink receives events fire-and-forget; implementations must not block
type Sink interface {
	Handle(ev GameEvent)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(ev GameEvent)

func (f SinkFunc) Handle(ev GameEvent) { f(ev) }

// Discard drops every event
var Discard Sink = SinkFunc(func(GameEvent) {})

// Fanout delivers each event to every sink in order
type Fanout []Sink

func (f Fanout) Handle(ev GameEvent) {
	for _, s := range f {
		if s != nil {
			s.Handle(ev)
		}
	}
}

// Dispatch hands events to sink in order
func Dispatch(sink Sink, events []GameEvent) {
	if sink == nil {
		return
	}
	for _, ev := range events {
		sink.Handle(ev)
	}
}
