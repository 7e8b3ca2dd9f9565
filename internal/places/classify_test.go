package places

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		types   []string
		want    DiscoverCategory
		matched bool
	}{
		{"restaurant", []string{"restaurant", "point_of_interest"}, DiscoverFood, true},
		{"museum", []string{"museum"}, DiscoverAttractions, true},
		{"pharmacy", []string{"pharmacy"}, DiscoverPractical, true},
		// Food wins over practical when a place carries both.
		{"cafe inside a mall", []string{"shopping_mall", "cafe"}, DiscoverFood, true},
		{"attraction beats practical", []string{"gas_station", "park"}, DiscoverAttractions, true},
		{"unknown types", []string{"point_of_interest", "establishment"}, "", false},
		{"no types", nil, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Classify(tc.types)
			if ok != tc.matched || got != tc.want {
				t.Errorf("Classify(%v) = (%q, %v), want (%q, %v)", tc.types, got, ok, tc.want, tc.matched)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, s := range []string{"food", "attractions", "practical"} {
		if !ValidCategory(s) {
			t.Errorf("ValidCategory(%q) = false", s)
		}
	}
	for _, s := range []string{"", "nature", "Food"} {
		if ValidCategory(s) {
			t.Errorf("ValidCategory(%q) = true", s)
		}
	}
}

func TestAllTypes(t *testing.T) {
	types := AllTypes()
	var want []string
	for _, cat := range CategoryOrder {
		want = append(want, CategoryTypes[cat]...)
	}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("AllTypes() = %v, want %v", types, want)
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		if seen[typ] {
			t.Errorf("duplicate type %q", typ)
		}
		seen[typ] = true
	}
}

func TestTypeLabel(t *testing.T) {
	cases := []struct {
		types []string
		want  string
	}{
		{[]string{"restaurant"}, "Restaurant"},
		{[]string{"point_of_interest", "museum"}, "Museum"},
		{[]string{"unknown"}, "Place"},
		{nil, "Place"},
	}
	for _, tc := range cases {
		if got := TypeLabel(tc.types); got != tc.want {
			t.Errorf("TypeLabel(%v) = %q, want %q", tc.types, got, tc.want)
		}
	}
}
