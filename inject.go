package tagball

// syntheticPointerEvent represents a single injected pointer event in
// surface coordinates, the same space real pointer input arrives in.
type syntheticPointerEvent struct {
	x, y  float64
	click bool
}

// InjectMove queues a pointer move to surface coordinates (x, y). The event
// is consumed at the start of the next Tick.
func (cl *Cloud) InjectMove(x, y float64) {
	cl.injectQueue = append(cl.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a click at surface coordinates (x, y). The item boxes
// it is tested against are the ones computed by the last drawn frame, so a
// click is usually preceded by InjectMove and one frame.
func (cl *Cloud) InjectClick(x, y float64) {
	cl.injectQueue = append(cl.injectQueue, syntheticPointerEvent{x: x, y: y, click: true})
}

// InjectPath queues moves from (fromX, fromY) to (toX, toY) linearly
// interpolated over the given number of frames, endpoints included.
// Minimum frames is 2.
func (cl *Cloud) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		cl.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued synthetic events.
func (cl *Cloud) Pending() int {
	return len(cl.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same path as real input. Returns true if an event was
// consumed.
func (cl *Cloud) processInjectedInput() bool {
	if len(cl.injectQueue) == 0 {
		return false
	}
	evt := cl.injectQueue[0]
	copy(cl.injectQueue, cl.injectQueue[1:])
	cl.injectQueue = cl.injectQueue[:len(cl.injectQueue)-1]

	if evt.click {
		if _, err := cl.Click(evt.x, evt.y); err != nil {
			logf("injected click: %v", err)
		}
		return true
	}
	cl.PointerMove(evt.x, evt.y)
	return true
}
