package folio

// ActiveBandMargin shrinks the viewport to its central 20% horizontal band.
var ActiveBandMargin = Margin{Top: Pct(-40), Right: Px(0), Bottom: Pct(-40), Left: Px(0)}

// ActiveSectionTracker reports which named region currently crosses the
// central band of the viewport.
//
// Within one batch of intersection changes, every intersecting entry is
// written in turn, so the last intersecting entry wins. Entries leaving the
// band do not clear the active id.
type ActiveSectionTracker struct {
	ids      []string
	observer *IntersectionObserver
	active   *Value[string]
}

// NewActiveSectionTracker looks up each id in the page tree and observes the
// nodes found. Ids without a node are skipped. The active id is empty until
// some region intersects.
func NewActiveSectionTracker(s *Scene, ids []string) *ActiveSectionTracker {
	t := &ActiveSectionTracker{
		ids:    append([]string(nil), ids...),
		active: NewValue(""),
	}
	t.observer = s.NewIntersectionObserver(t.onEntries, IntersectionOptions{
		RootMargin: ActiveBandMargin,
	})
	for _, id := range t.ids {
		if n := s.root.FindByName(id); n != nil {
			t.observer.Observe(n)
		}
	}
	return t
}

func (t *ActiveSectionTracker) onEntries(entries []IntersectionEntry) {
	for _, e := range entries {
		if e.IsIntersecting {
			t.active.Set(e.Target.Name)
		}
	}
}

// Active returns the reactive active region id.
func (t *ActiveSectionTracker) Active() ReadOnly[string] {
	return t.active
}

// Observed returns how many of the requested ids resolved to nodes.
func (t *ActiveSectionTracker) Observed() int {
	return t.observer.NumTargets()
}

// Close disconnects the underlying observer.
func (t *ActiveSectionTracker) Close() {
	t.observer.Disconnect()
}
