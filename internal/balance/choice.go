package balance

type weighted[T any] struct {
	value  T
	weight float64
}

// pick walks the cumulative distribution of options and returns the bucket
// roll falls into. Weights are normalised by their total; non-positive
// weights never win. The last positive bucket absorbs rounding residue so a
// roll just below 1 always lands somewhere.
func pick[T any](options []weighted[T], roll float64, fallback T) T {
	total := 0.0
	for _, o := range options {
		if o.weight > 0 {
			total += o.weight
		}
	}
	if total <= 0 {
		return fallback
	}

	target := roll * total
	cumulative := 0.0
	last := fallback
	for _, o := range options {
		if o.weight <= 0 {
			continue
		}
		cumulative += o.weight
		last = o.value
		if target < cumulative {
			return o.value
		}
	}
	return last
}
