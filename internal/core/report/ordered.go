package report

// orderedSums accumulates amounts per key and remembers the order in which
// keys were first seen. That insertion order is the tie-break for equal sums.
type orderedSums[K comparable] struct {
	keys []K
	sums map[K]float64
}

func newOrderedSums[K comparable]() *orderedSums[K] {
	return &orderedSums[K]{sums: make(map[K]float64)}
}

func (o *orderedSums[K]) add(key K, amount float64) {
	if _, seen := o.sums[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.sums[key] += amount
}

// each visits keys in first-insertion order.
func (o *orderedSums[K]) each(fn func(key K, sum float64)) {
	for _, k := range o.keys {
		fn(k, o.sums[k])
	}
}

func (o *orderedSums[K]) len() int { return len(o.keys) }
