package filevalue

// Stats represents per-instance access counters.
type Stats struct {
	Loads        int // Successful reads from the backing file
	Stores       int // Writes to the backing file
	Hits         int // Accessor calls served from memory with no reload
	StaleReloads int // Reloads or recomputations triggered by staleness or invalidation
}

// Stats returns a snapshot of the access counters for this instance.
func (v *Value[T]) Stats() Stats {
	return v.stats
}
