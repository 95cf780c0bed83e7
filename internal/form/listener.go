package form

import "sync"

// DataChangeListener is told when a save changed the stored records.
type DataChangeListener interface {
	OnDataChanged()
}

// ListenerFunc adapts a plain function to DataChangeListener.
type ListenerFunc func()

// OnDataChanged calls f.
func (f ListenerFunc) OnDataChanged() { f() }

// Listeners is an ordered set of DataChangeListener. The zero value is ready
// to use.
type Listeners struct {
	mu   sync.RWMutex
	list []DataChangeListener
}

// Subscribe appends l. Listeners are notified in subscription order.
func (ls *Listeners) Subscribe(l DataChangeListener) {
	if l == nil {
		return
	}
	ls.mu.Lock()
	ls.list = append(ls.list, l)
	ls.mu.Unlock()
}

// Notify calls every listener synchronously, once.
func (ls *Listeners) Notify() {
	ls.mu.RLock()
	list := make([]DataChangeListener, len(ls.list))
	copy(list, ls.list)
	ls.mu.RUnlock()

	for _, l := range list {
		l.OnDataChanged()
	}
}

// Len returns the number of subscribed listeners.
func (ls *Listeners) Len() int {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	return len(ls.list)
}

// OnDataChanged lets a Listeners be subscribed to another notifier.
func (ls *Listeners) OnDataChanged() { ls.Notify() }
