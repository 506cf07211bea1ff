// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data any // payload, see the *Data types next to each EventType
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. Listeners may dispatch further events from OnEvent;
// those are delivered before the outer Dispatch returns.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll subscribes one listener to several event types.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe - отписка от события. Listeners must be comparable.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch sends the event to every listener subscribed when the call began.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	for _, listener := range listeners[:len(listeners):len(listeners)] {
		listener.OnEvent(event)
	}
}

// HasListeners reports whether anyone is subscribed to the type.
func (d *Dispatcher) HasListeners(eventType EventType) bool {
	return len(d.listeners[eventType]) > 0
}
