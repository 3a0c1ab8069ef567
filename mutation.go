package folio

// Mutation records one structural change: Node was added to or removed from
// Parent.
type Mutation struct {
	Parent *Node
	Node   *Node
	Added  bool
}

// MutationObserver receives batches of structural changes made anywhere in
// a scene's page or overlay tree.
type MutationObserver struct {
	fn        func([]Mutation)
	log       *mutationLog
	connected bool
}

// Disconnect stops delivery. Safe to call more than once.
func (o *MutationObserver) Disconnect() {
	if !o.connected {
		return
	}
	o.connected = false
	for i, other := range o.log.observers {
		if other == o {
			copy(o.log.observers[i:], o.log.observers[i+1:])
			o.log.observers[len(o.log.observers)-1] = nil
			o.log.observers = o.log.observers[:len(o.log.observers)-1]
			break
		}
	}
}

// mutationLog accumulates changes during a frame and delivers them once.
type mutationLog struct {
	pending   []Mutation
	observers []*MutationObserver
}

func (l *mutationLog) record(m Mutation) {
	if len(l.observers) == 0 {
		return
	}
	l.pending = append(l.pending, m)
}

// deliver hands the pending batch to every connected observer. Changes made
// by observers during delivery go into the next batch.
func (l *mutationLog) deliver() {
	if len(l.pending) == 0 {
		return
	}
	batch := l.pending
	l.pending = nil
	observers := append([]*MutationObserver(nil), l.observers...)
	for _, o := range observers {
		if o.connected {
			o.fn(batch)
		}
	}
}

// ObserveMutations registers fn to receive structural changes (child
// insertions and removals anywhere under the page or overlay root). Changes
// are batched per frame and delivered during Step, before intersection
// checks.
func (s *Scene) ObserveMutations(fn func([]Mutation)) *MutationObserver {
	o := &MutationObserver{fn: fn, log: &s.mutations, connected: true}
	s.mutations.observers = append(s.mutations.observers, o)
	return o
}

// NumMutationObservers returns the number of connected mutation observers.
func (s *Scene) NumMutationObservers() int {
	return len(s.mutations.observers)
}
