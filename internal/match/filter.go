package match

// Filter is a category token selecting a view of the store.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterPopular Filter = "popular"
	FilterLive    Filter = "live"
)

// Filters lists the tokens offered by the filter dropdown, in menu order.
var Filters = []Filter{FilterAll, FilterPopular, FilterLive}

// ParseFilter maps a raw token onto a known Filter.
func ParseFilter(raw string) (Filter, bool) {
	switch f := Filter(raw); f {
	case FilterAll, FilterPopular, FilterLive:
		return f, true
	}
	return "", false
}

// Label is the dropdown button text for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterAll:
		return "All Matches"
	case FilterPopular:
		return "Popular Matches"
	case FilterLive:
		return "Live Matches 🔴"
	default:
		return string(f)
	}
}
