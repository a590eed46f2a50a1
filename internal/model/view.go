package model

type ResultsQuery struct {
	Query string
	// Exact memory filter; nil means any.
	MemoryGB *float64
	// Exact color filter; empty means any.
	Color      string
	MinBattery float64
}

// FilterResult is the filtered subset plus the options still selectable
// under the query and battery threshold.
type FilterResult struct {
	Items         []Item
	MemoryOptions []float64
	ColorOptions  []string
}

type ResultRow struct {
	Key       ItemKey
	Item      Item
	Quote     Quote
	InCompare bool
}

type HomeView struct {
	Term   int
	Ticker []ResultRow
}

type ResultsView struct {
	Query         string
	Term          int
	Rows          []ResultRow
	MemoryOptions []float64
	ColorOptions  []string
	CompareCount  int
	Available     bool
}

type DetailView struct {
	Key   ItemKey
	Item  Item
	Quote Quote
	Term  int
}

type CompareColumn struct {
	Key   ItemKey
	Item  Item
	Quote Quote
}

type CompareView struct {
	Term     int
	Capacity int
	Columns  []CompareColumn
}
