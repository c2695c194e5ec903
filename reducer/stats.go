package reducer

// GroupStats counts eliminations performed at one group boundary, split by
// which pass found them — useful for judging whether the short pass alone
// would have sufficed.
type GroupStats struct {
	ShortPass int
	FullPass  int
}

// Stats accumulates elimination counts across an entire Reduce call.
type Stats struct {
	ByGroup map[int]*GroupStats
	Killed  int
}

// NewStats returns an empty Stats. Reduce creates one this way, fills it
// in, and returns it.
func NewStats() *Stats {
	return &Stats{ByGroup: make(map[int]*GroupStats)}
}

func (s *Stats) record(g int, short bool) {
	gs, ok := s.ByGroup[g]
	if !ok {
		gs = &GroupStats{}
		s.ByGroup[g] = gs
	}
	if short {
		gs.ShortPass++
	} else {
		gs.FullPass++
	}
	s.Killed++
}
