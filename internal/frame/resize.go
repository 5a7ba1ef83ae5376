package frame

// ResizeHub fans out surface size changes to listeners. It only notifies
// when the size actually changes.
type ResizeHub struct {
	w, h      int
	next      int
	listeners map[int]func(w, h int)
}

func NewResizeHub() *ResizeHub {
	return &ResizeHub{listeners: map[int]func(w, h int){}}
}

func (r *ResizeHub) OnResize(fn func(w, h int)) (remove func()) {
	r.next++
	id := r.next
	r.listeners[id] = fn
	return func() { delete(r.listeners, id) }
}

func (r *ResizeHub) Size() (w, h int) { return r.w, r.h }

func (r *ResizeHub) Listeners() int { return len(r.listeners) }

// Update records the current size and reports whether it changed.
func (r *ResizeHub) Update(w, h int) bool {
	if w == r.w && h == r.h {
		return false
	}
	r.w, r.h = w, h
	for _, fn := range r.listeners {
		fn(w, h)
	}
	return true
}
