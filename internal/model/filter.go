package model

// FilterKind tags the shape a dashboard filter value can take. A filter is
// either unset, a single string, a list of accepted strings, or a number;
// one tagged type per field replaces the dynamically-shaped values the
// dashboards send.
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterString
	FilterStringList
	FilterNumber
)

// FilterValue is a tagged variant over the possible filter shapes.
type FilterValue struct {
	kind FilterKind
	str  string
	list []string
	num  float64
}

// NoFilter returns the unset filter value.
func NoFilter() FilterValue {
	return FilterValue{kind: FilterNone}
}

// StringFilter wraps a single-value filter. An empty string means unset.
func StringFilter(s string) FilterValue {
	if s == "" {
		return NoFilter()
	}
	return FilterValue{kind: FilterString, str: s}
}

// StringListFilter wraps a multi-value filter. An empty list means unset.
func StringListFilter(values []string) FilterValue {
	if len(values) == 0 {
		return NoFilter()
	}
	return FilterValue{kind: FilterStringList, list: values}
}

// NumberFilter wraps a numeric filter value.
func NumberFilter(n float64) FilterValue {
	return FilterValue{kind: FilterNumber, num: n}
}

// Kind returns the variant tag.
func (v FilterValue) Kind() FilterKind { return v.kind }

// IsSet reports whether the filter constrains anything.
func (v FilterValue) IsSet() bool { return v.kind != FilterNone }

// MatchString reports whether s passes the filter. Unset filters match
// everything; numeric filters never match a string field.
func (v FilterValue) MatchString(s string) bool {
	switch v.kind {
	case FilterNone:
		return true
	case FilterString:
		return v.str == s
	case FilterStringList:
		for _, candidate := range v.list {
			if candidate == s {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Number returns the numeric value and whether the filter holds one.
func (v FilterValue) Number() (float64, bool) {
	if v.kind != FilterNumber {
		return 0, false
	}
	return v.num, true
}

// InventoryFilter is the full set of dashboard filters applied to enriched
// inventory. Zero value matches every unit.
type InventoryFilter struct {
	Dealership   FilterValue
	DealerGroup  FilterValue
	RVType       FilterValue
	Manufacturer FilterValue
	Condition    FilterValue
	State        FilterValue
	MinPrice     FilterValue
	MaxPrice     FilterValue
}

// Matches reports whether a unit passes every set filter.
func (f InventoryFilter) Matches(u EnrichedUnit) bool {
	if !f.Dealership.MatchString(u.Dealership) {
		return false
	}
	if !f.DealerGroup.MatchString(u.DealerGroup) {
		return false
	}
	if !f.RVType.MatchString(u.RVType) {
		return false
	}
	if !f.Manufacturer.MatchString(u.Manufacturer) {
		return false
	}
	if !f.Condition.MatchString(u.Condition) {
		return false
	}
	if !f.State.MatchString(u.State) {
		return false
	}
	if min, ok := f.MinPrice.Number(); ok && u.Price < min {
		return false
	}
	if max, ok := f.MaxPrice.Number(); ok && u.Price > max {
		return false
	}
	return true
}

// Apply returns the units passing the filter, preserving input order.
func (f InventoryFilter) Apply(units []EnrichedUnit) []EnrichedUnit {
	out := make([]EnrichedUnit, 0, len(units))
	for _, u := range units {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}
