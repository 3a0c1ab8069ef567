package folio

// nodeListener is a pointer listener attached to a single node.
type nodeListener struct {
	id    uint32
	event EventType
	fn    func(PointerContext)
}

// listenerIDCounter numbers node listeners across the process.
var listenerIDCounter uint32

// ListenerHandle identifies a listener attached with Node.AddListener.
type ListenerHandle struct {
	id   uint32
	node *Node
}

// Remove detaches the listener. Removing twice, or removing after the node
// was disposed, is a no-op.
func (h ListenerHandle) Remove() {
	if h.node == nil {
		return
	}
	h.node.removeListener(h.id)
}

// Valid reports whether the handle refers to a listener that is still attached.
func (h ListenerHandle) Valid() bool {
	if h.node == nil {
		return false
	}
	for _, l := range h.node.listeners {
		if l.id == h.id {
			return true
		}
	}
	return false
}

// AddListener attaches fn to the given pointer event on this node. Unlike the
// On* fields, any number of listeners may be attached; each call adds a new
// one, so callers that rebind must Remove the old handle first.
func (n *Node) AddListener(event EventType, fn func(PointerContext)) ListenerHandle {
	listenerIDCounter++
	id := listenerIDCounter
	n.listeners = append(n.listeners, nodeListener{id: id, event: event, fn: fn})
	return ListenerHandle{id: id, node: n}
}

// NumListeners returns how many listeners are attached for event.
func (n *Node) NumListeners(event EventType) int {
	count := 0
	for _, l := range n.listeners {
		if l.event == event {
			count++
		}
	}
	return count
}

func (n *Node) removeListener(id uint32) {
	for i := range n.listeners {
		if n.listeners[i].id == id {
			copy(n.listeners[i:], n.listeners[i+1:])
			n.listeners[len(n.listeners)-1] = nodeListener{}
			n.listeners = n.listeners[:len(n.listeners)-1]
			return
		}
	}
}

// dispatch runs the node's On* callback for event followed by every attached
// listener. Listeners added during dispatch do not run until the next event.
func (n *Node) dispatch(event EventType, ctx PointerContext) {
	var cb func(PointerContext)
	switch event {
	case EventPointerDown:
		cb = n.OnPointerDown
	case EventPointerUp:
		cb = n.OnPointerUp
	case EventPointerMove:
		cb = n.OnPointerMove
	case EventClick:
		cb = n.OnClick
	case EventPointerEnter:
		cb = n.OnPointerEnter
	case EventPointerLeave:
		cb = n.OnPointerLeave
	}
	if cb != nil {
		cb(ctx)
	}
	count := len(n.listeners)
	for i := 0; i < count && i < len(n.listeners); i++ {
		if l := n.listeners[i]; l.event == event {
			l.fn(ctx)
		}
	}
}
