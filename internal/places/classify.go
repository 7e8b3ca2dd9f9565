package places

// DiscoverCategory is one of the three display buckets discovered
// places are classified into.
type DiscoverCategory string

const (
	DiscoverFood        DiscoverCategory = "food"
	DiscoverAttractions DiscoverCategory = "attractions"
	DiscoverPractical   DiscoverCategory = "practical"
)

// CategoryOrder is the classification precedence: the first category
// whose type list intersects a place's types wins.
var CategoryOrder = []DiscoverCategory{
	DiscoverFood,
	DiscoverAttractions,
	DiscoverPractical,
}

// CategoryTypes is the allow-list of place types per category. Only
// these types are ever requested from the search provider.
var CategoryTypes = map[DiscoverCategory][]string{
	DiscoverFood:        {"restaurant", "cafe", "bakery", "bar", "ice_cream_shop"},
	DiscoverAttractions: {"tourist_attraction", "park", "museum"},
	DiscoverPractical:   {"gas_station", "pharmacy", "supermarket", "shopping_mall"},
}

// AllTypes returns the union of every category's allowed types in
// classification order.
func AllTypes() []string {
	var types []string
	for _, cat := range CategoryOrder {
		types = append(types, CategoryTypes[cat]...)
	}
	return types
}

// ValidCategory reports whether s names a discover category.
func ValidCategory(s string) bool {
	_, ok := CategoryTypes[DiscoverCategory(s)]
	return ok
}

// Classify assigns a place's types to exactly one category,
// first-match-wins over CategoryOrder. The second return is false for
// places whose types match no category.
func Classify(types []string) (DiscoverCategory, bool) {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	for _, cat := range CategoryOrder {
		for _, t := range CategoryTypes[cat] {
			if set[t] {
				return cat, true
			}
		}
	}
	return "", false
}

// typeLabels maps place types to short display labels.
var typeLabels = map[string]string{
	"restaurant":         "Restaurant",
	"cafe":               "Cafe",
	"bakery":             "Bakery",
	"bar":                "Bar",
	"ice_cream_shop":     "Ice Cream",
	"tourist_attraction": "Attraction",
	"park":               "Park",
	"museum":             "Museum",
	"gas_station":        "Gas Station",
	"pharmacy":           "Pharmacy",
	"supermarket":        "Supermarket",
	"shopping_mall":      "Shopping",
}

// TypeLabel returns a display label for the first recognized type,
// or "Place" when none matches.
func TypeLabel(types []string) string {
	for _, t := range types {
		if label, ok := typeLabels[t]; ok {
			return label
		}
	}
	return "Place"
}
