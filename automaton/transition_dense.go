package automaton

// denseTransitions is a 256-entry array indexed directly by symbol
// value. Fast, but costs 256 ints per state regardless of out-degree.
type denseTransitions struct {
	edges [256]int32
}

func newDenseTransitions() *denseTransitions {
	d := &denseTransitions{}
	for i := range d.edges {
		d.edges[i] = none
	}
	return d
}

func (d *denseTransitions) Add(c byte, i int) {
	d.edges[c] = int32(i)
}

func (d *denseTransitions) Get(c byte) (int, bool) {
	v := d.edges[c]
	if v == none {
		return 0, false
	}
	return int(v), true
}

func (d *denseTransitions) Update(c byte, i int) {
	if d.edges[c] == none {
		return
	}
	d.edges[c] = int32(i)
}

func (d *denseTransitions) Iterate(fn func(c byte, i int)) {
	for c, v := range d.edges {
		if v != none {
			fn(byte(c), int(v))
		}
	}
}
