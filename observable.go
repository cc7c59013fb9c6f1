package tagball

// Handler receives the payload of a published event. The payload type
// depends on the event name; see the Event* constants.
type Handler func(payload any)

type subscriber struct {
	id uint32
	fn Handler
}

// Observable is a named-event publish/subscribe registry. Components hold
// one as a member rather than embedding it.
//
// Observable is not safe for concurrent use. All publishing happens on the
// frame goroutine.
type Observable struct {
	subs   map[string][]subscriber
	nextID uint32
}

// NewObservable returns an empty Observable.
func NewObservable() *Observable {
	return &Observable{subs: make(map[string][]subscriber)}
}

// Subscription allows removing a registered handler.
type Subscription struct {
	id   uint32
	name string
	obs  *Observable
}

// Subscribe registers fn under name. Handlers for the same name run in
// registration order. Registering the same function twice is allowed and
// results in two invocations per publish.
func (o *Observable) Subscribe(name string, fn Handler) Subscription {
	if o.subs == nil {
		o.subs = make(map[string][]subscriber)
	}
	o.nextID++
	id := o.nextID
	o.subs[name] = append(o.subs[name], subscriber{id: id, fn: fn})
	return Subscription{id: id, name: name, obs: o}
}

// Publish synchronously invokes every handler currently registered under
// name. Handlers added or removed while publishing take effect on the next
// Publish. Publishing a name without subscribers is a no-op.
func (o *Observable) Publish(name string, payload any) {
	list := o.subs[name]
	if len(list) == 0 {
		return
	}
	// Snapshot so handlers can subscribe/unsubscribe without disturbing
	// this iteration.
	snap := make([]subscriber, len(list))
	copy(snap, list)
	for _, s := range snap {
		s.fn(payload)
	}
}

// Len returns the number of handlers registered under name.
func (o *Observable) Len(name string) int {
	return len(o.subs[name])
}

// Remove unregisters this handler. Calling Remove more than once, or on the
// zero Subscription, is a no-op.
func (s Subscription) Remove() {
	if s.obs == nil {
		return
	}
	list := s.obs.subs[s.name]
	for i := range list {
		if list[i].id == s.id {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = subscriber{}
			list = list[:len(list)-1]
			break
		}
	}
	if len(list) == 0 {
		delete(s.obs.subs, s.name)
		return
	}
	s.obs.subs[s.name] = list
}
