package gridcalc

// Storage holds the caches owned by one evaluation session. it is created
// empty with the evaluator and dropped with it, never shared.
type Storage struct {
	texts     *TextCache
	positions *PositionCache
}

// NewStorage creates storage with empty caches
func NewStorage() *Storage {
	return &Storage{
		texts:     NewTextCache(),
		positions: NewPositionCache(),
	}
}

// Stats summarizes cache usage for a session
type Stats struct {
	CachedTexts     int
	CachedPositions int
	TextHits        int
	PositionHits    int
}

// Stats returns the current cache counters
func (s *Storage) Stats() Stats {
	return Stats{
		CachedTexts:     s.texts.Count(),
		CachedPositions: s.positions.Count(),
		TextHits:        s.texts.Hits(),
		PositionHits:    s.positions.Hits(),
	}
}
