package gridcalc

// TextCache maps a cell's raw text to its computed value. a given text
// always evaluates to the same number because references are absolute.
type TextCache struct {
	values map[string]float64
	hits   int
}

// NewTextCache creates an empty text cache
func NewTextCache() *TextCache {
	return &TextCache{
		values: make(map[string]float64),
	}
}

// Get returns the cached value for text
func (tc *TextCache) Get(text string) (float64, bool) {
	v, exists := tc.values[text]
	if exists {
		tc.hits++
	}
	return v, exists
}

// Put stores the value for text. an existing entry is never replaced, a
// value once cached stays fixed for the session.
func (tc *TextCache) Put(text string, value float64) {
	if _, exists := tc.values[text]; exists {
		return
	}
	tc.values[text] = value
}

// Count returns the number of cached texts
func (tc *TextCache) Count() int {
	return len(tc.values)
}

// Hits returns how many lookups were served from the cache
func (tc *TextCache) Hits() int {
	return tc.hits
}

// PositionCache maps a dereferenced grid position to the value of the cell
// stored there. populated lazily as references are resolved.
type PositionCache struct {
	values map[CellAddress]float64
	hits   int
}

// NewPositionCache creates an empty position cache
func NewPositionCache() *PositionCache {
	return &PositionCache{
		values: make(map[CellAddress]float64),
	}
}

// Get returns the cached value at addr
func (pc *PositionCache) Get(addr CellAddress) (float64, bool) {
	v, exists := pc.values[addr]
	if exists {
		pc.hits++
	}
	return v, exists
}

// Put stores the value at addr, keeping the first value written
func (pc *PositionCache) Put(addr CellAddress, value float64) {
	if _, exists := pc.values[addr]; exists {
		return
	}
	pc.values[addr] = value
}

// Count returns the number of cached positions
func (pc *PositionCache) Count() int {
	return len(pc.values)
}

// Hits returns how many lookups were served from the cache
func (pc *PositionCache) Hits() int {
	return pc.hits
}
