package graphics

// Binding is returned by BindScope. Release undoes the bind; calling it
// more than once has no further effect.
type Binding struct {
	unbind func()
}

func (b *Binding) Release() {
	if b == nil || b.unbind == nil {
		return
	}
	b.unbind()
	b.unbind = nil
}

type binder interface {
	Bind()
	Unbind()
}

func bindScope(o binder) *Binding {
	o.Bind()
	return &Binding{unbind: o.Unbind}
}
