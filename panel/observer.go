package panel

// Observer receives panel notifications. Embed NopObserver to implement only
// the callbacks you need.
type Observer interface {
	OpenStatusChanged(open bool)
	ProgressChanged(progress float64)
	HeightChanged(height float64)
}

// NopObserver implements Observer with no-op callbacks.
type NopObserver struct{}

func (NopObserver) OpenStatusChanged(bool) {}
func (NopObserver) ProgressChanged(float64) {}
func (NopObserver) HeightChanged(float64) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnOpenStatus func(open bool)
	OnProgress   func(progress float64)
	OnHeight     func(height float64)
}

func (f ObserverFuncs) OpenStatusChanged(open bool) {
	if f.OnOpenStatus != nil {
		f.OnOpenStatus(open)
	}
}

func (f ObserverFuncs) ProgressChanged(progress float64) {
	if f.OnProgress != nil {
		f.OnProgress(progress)
	}
}

func (f ObserverFuncs) HeightChanged(height float64) {
	if f.OnHeight != nil {
		f.OnHeight(height)
	}
}

// observers is the subscription set. Entries are keyed so that an
// unsubscribe removes exactly the registration it was returned for.
type observers struct {
	next    int
	entries []observerEntry
}

type observerEntry struct {
	id       int
	observer Observer
}

func (o *observers) add(obs Observer) func() {
	o.next++
	id := o.next
	o.entries = append(o.entries, observerEntry{id: id, observer: obs})
	return func() { o.remove(id) }
}

func (o *observers) remove(id int) {
	for i, e := range o.entries {
		if e.id == id {
			o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
			return
		}
	}
}

// snapshot lets callbacks unsubscribe while being dispatched.
func (o *observers) snapshot() []Observer {
	out := make([]Observer, len(o.entries))
	for i, e := range o.entries {
		out[i] = e.observer
	}
	return out
}

func (o *observers) openStatus(open bool) {
	for _, obs := range o.snapshot() {
		obs.OpenStatusChanged(open)
	}
}

func (o *observers) progress(p float64) {
	for _, obs := range o.snapshot() {
		obs.ProgressChanged(p)
	}
}

func (o *observers) height(h float64) {
	for _, obs := range o.snapshot() {
		obs.HeightChanged(h)
	}
}
