package folio

import "testing"

func TestValueSetNotifiesOnChange(t *testing.T) {
	v := NewValue(0)
	var seen []int
	v.Subscribe(func(x int) { seen = append(seen, x) })

	v.Set(1)
	v.Set(1)
	v.Set(2)
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("seen = %v, want [1 2]", seen)
	}
	if v.Get() != 2 {
		t.Errorf("Get = %d, want 2", v.Get())
	}
}

func TestValueSubscribeDoesNotReplay(t *testing.T) {
	v := NewValue("about")
	var calls int
	v.Subscribe(func(string) { calls++ })
	if calls != 0 {
		t.Error("Subscribe should not run for the current value")
	}
}

func TestValueSubscribersRunInOrder(t *testing.T) {
	v := NewValue(false)
	var order []int
	v.Subscribe(func(bool) { order = append(order, 1) })
	v.Subscribe(func(bool) { order = append(order, 2) })
	v.Set(true)
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestSubscriptionRemove(t *testing.T) {
	v := NewValue(0)
	var calls int
	sub := v.Subscribe(func(int) { calls++ })
	sub.Remove()
	sub.Remove()
	v.Set(5)
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if v.NumSubscribers() != 0 {
		t.Errorf("NumSubscribers = %d, want 0", v.NumSubscribers())
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	v := NewValue(0)
	var first, second int
	var sub Subscription
	sub = v.Subscribe(func(int) {
		first++
		sub.Remove()
	})
	v.Subscribe(func(int) { second++ })

	v.Set(1)
	v.Set(2)
	if first != 1 {
		t.Errorf("first = %d, want 1", first)
	}
	if second != 2 {
		t.Errorf("second = %d, want 2", second)
	}
}
