package planner

import (
	"reflect"
	"testing"

	"github.com/jengzang/trip-planner-go/internal/models"
)

func day(id string, names ...string) models.DayPlan {
	if names == nil {
		names = []string{}
	}
	return models.DayPlan{ID: id, Label: id, LocationNames: names}
}

func allNames(days []models.DayPlan) []string {
	var out []string
	for _, d := range days {
		out = append(out, d.LocationNames...)
	}
	return out
}

func TestDefaultDays(t *testing.T) {
	days := DefaultDays(7)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].ID != "day-1" || days[0].Label != "Day 1" {
		t.Errorf("unexpected first day: %+v", days[0])
	}
	if days[6].ID != "day-7" {
		t.Errorf("unexpected last day id: %s", days[6].ID)
	}
	for _, d := range days {
		if d.LocationNames == nil || len(d.LocationNames) != 0 {
			t.Errorf("day %s should start with an empty name list", d.ID)
		}
	}

	if got := DefaultDays(0); len(got) != DefaultTripDays {
		t.Errorf("expected fallback to %d days, got %d", DefaultTripDays, len(got))
	}
}

func TestMovePoolToDay(t *testing.T) {
	days := []models.DayPlan{day("day-1", "A", "B"), day("day-2")}

	t.Run("append to bucket", func(t *testing.T) {
		out, active, moved := Move(days, DragRef{Kind: RefPool, Name: "C"}, DragRef{Kind: RefDay, DayID: "day-2"})
		if !moved {
			t.Fatal("expected move to apply")
		}
		if active != "day-2" {
			t.Errorf("active day = %s, want day-2", active)
		}
		if got := out[1].LocationNames; !reflect.DeepEqual(got, []string{"C"}) {
			t.Errorf("day-2 = %v, want [C]", got)
		}
	})

	t.Run("insert before target", func(t *testing.T) {
		out, _, moved := Move(days, DragRef{Kind: RefPool, Name: "C"}, DragRef{Kind: RefDay, DayID: "day-1", Name: "B"})
		if !moved {
			t.Fatal("expected move to apply")
		}
		if got := out[0].LocationNames; !reflect.DeepEqual(got, []string{"A", "C", "B"}) {
			t.Errorf("day-1 = %v, want [A C B]", got)
		}
	})

	t.Run("missing target name appends", func(t *testing.T) {
		out, _, moved := Move(days, DragRef{Kind: RefPool, Name: "C"}, DragRef{Kind: RefDay, DayID: "day-1", Name: "Z"})
		if !moved {
			t.Fatal("expected move to apply")
		}
		if got := out[0].LocationNames; !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
			t.Errorf("day-1 = %v, want [A B C]", got)
		}
	})

	t.Run("already assigned is a no-op", func(t *testing.T) {
		out, _, moved := Move(days, DragRef{Kind: RefPool, Name: "A"}, DragRef{Kind: RefDay, DayID: "day-2"})
		if moved {
			t.Fatal("expected no-op for an assigned name")
		}
		if !reflect.DeepEqual(out, days) {
			t.Error("plans changed on a no-op move")
		}
	})
}

func TestMoveDayToDay(t *testing.T) {
	days := []models.DayPlan{day("day-1", "A", "B", "C"), day("day-2", "D")}

	t.Run("cross-day move", func(t *testing.T) {
		out, active, moved := Move(days, DragRef{Kind: RefDay, DayID: "day-1", Name: "B"}, DragRef{Kind: RefDay, DayID: "day-2", Name: "D"})
		if !moved {
			t.Fatal("expected move to apply")
		}
		if active != "day-2" {
			t.Errorf("active day = %s, want day-2", active)
		}
		if got := out[0].LocationNames; !reflect.DeepEqual(got, []string{"A", "C"}) {
			t.Errorf("day-1 = %v, want [A C]", got)
		}
		if got := out[1].LocationNames; !reflect.DeepEqual(got, []string{"B", "D"}) {
			t.Errorf("day-2 = %v, want [B D]", got)
		}
	})

	t.Run("same-day reorder preserves set", func(t *testing.T) {
		out, _, moved := Move(days, DragRef{Kind: RefDay, DayID: "day-1", Name: "C"}, DragRef{Kind: RefDay, DayID: "day-1", Name: "A"})
		if !moved {
			t.Fatal("expected move to apply")
		}
		if got := out[0].LocationNames; !reflect.DeepEqual(got, []string{"C", "A", "B"}) {
			t.Errorf("day-1 = %v, want [C A B]", got)
		}
	})

	t.Run("duplicate in destination is a no-op", func(t *testing.T) {
		dup := []models.DayPlan{day("day-1", "A"), day("day-2", "A")}
		_, _, moved := Move(dup, DragRef{Kind: RefDay, DayID: "day-1", Name: "A"}, DragRef{Kind: RefDay, DayID: "day-2"})
		if moved {
			t.Fatal("expected no-op when the destination already holds the name")
		}
	})

	t.Run("source name absent is a no-op", func(t *testing.T) {
		_, _, moved := Move(days, DragRef{Kind: RefDay, DayID: "day-1", Name: "Z"}, DragRef{Kind: RefDay, DayID: "day-2"})
		if moved {
			t.Fatal("expected no-op for a missing source name")
		}
	})
}

func TestMoveUnresolvableTargets(t *testing.T) {
	days := []models.DayPlan{day("day-1", "A")}

	cases := []struct {
		name string
		src  DragRef
		dst  DragRef
	}{
		{"pool target", DragRef{Kind: RefDay, DayID: "day-1", Name: "A"}, DragRef{Kind: RefPool}},
		{"unknown day", DragRef{Kind: RefPool, Name: "B"}, DragRef{Kind: RefDay, DayID: "day-9"}},
		{"empty source name", DragRef{Kind: RefPool}, DragRef{Kind: RefDay, DayID: "day-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, moved := Move(days, tc.src, tc.dst)
			if moved {
				t.Fatal("expected no-op")
			}
			if !reflect.DeepEqual(out, days) {
				t.Error("plans changed on a no-op move")
			}
		})
	}
}

func TestMoveNeverMutatesInput(t *testing.T) {
	days := []models.DayPlan{day("day-1", "A", "B"), day("day-2")}
	before := cloneDays(days)

	Move(days, DragRef{Kind: RefDay, DayID: "day-1", Name: "B"}, DragRef{Kind: RefDay, DayID: "day-2"})

	if !reflect.DeepEqual(days, before) {
		t.Fatalf("input mutated: %v, want %v", days, before)
	}
}

func TestMoveNoDuplicatesAcrossDays(t *testing.T) {
	days := []models.DayPlan{day("day-1", "A", "B"), day("day-2", "C")}

	out, _, moved := Move(days, DragRef{Kind: RefDay, DayID: "day-1", Name: "A"}, DragRef{Kind: RefDay, DayID: "day-2", Name: "C"})
	if !moved {
		t.Fatal("expected move to apply")
	}
	seen := make(map[string]int)
	for _, n := range allNames(out) {
		seen[n]++
	}
	for n, c := range seen {
		if c > 1 {
			t.Errorf("name %s appears %d times", n, c)
		}
	}
}

func TestRemove(t *testing.T) {
	days := []models.DayPlan{day("day-1", "A", "B")}

	out := Remove(days, "day-1", "A")
	if got := out[0].LocationNames; !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("day-1 = %v, want [B]", got)
	}
	if got := days[0].LocationNames; !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Error("input mutated by Remove")
	}

	out = Remove(days, "day-9", "A")
	if !reflect.DeepEqual(out, days) {
		t.Error("removing from an unknown day should change nothing")
	}
}

func TestUnassigned(t *testing.T) {
	all := []models.Location{
		{Name: "Hotel", Category: models.CategoryHotel},
		{Name: "A", Category: models.CategoryBeach},
		{Name: "B", Category: models.CategoryNature},
		{Name: "C", Category: models.CategoryFood},
	}
	days := []models.DayPlan{day("day-1", "B")}

	pool := Unassigned(all, days, "Hotel")
	var names []string
	for _, l := range pool {
		names = append(names, l.Name)
	}
	if !reflect.DeepEqual(names, []string{"A", "C"}) {
		t.Errorf("pool = %v, want [A C]", names)
	}
}

func TestNormalize(t *testing.T) {
	stored := []models.DayPlan{
		{ID: "day-2", Label: "Beach day", LocationNames: []string{"A", "", "A", "B"}},
		{ID: "day-5", LocationNames: []string{"B", "C"}},
	}

	out := Normalize(stored, 3)
	if len(out) != 3 {
		t.Fatalf("expected 3 days, got %d", len(out))
	}
	if got := out[0].LocationNames; len(got) != 0 {
		t.Errorf("day-1 = %v, want empty", got)
	}
	if out[1].Label != "Beach day" {
		t.Errorf("day-2 label = %s, want stored label kept", out[1].Label)
	}
	if got := out[1].LocationNames; !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("day-2 = %v, want [A B]", got)
	}
	if got := out[2].LocationNames; len(got) != 0 {
		t.Errorf("day-3 = %v, want empty (day-5 content is out of range)", got)
	}
}
