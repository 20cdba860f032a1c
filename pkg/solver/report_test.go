package solver

import (
	"context"
	"reflect"
	"testing"

	"github.com/thaumic/aspectpath/pkg/aspect"
	"github.com/thaumic/aspectpath/pkg/graph"
	"github.com/thaumic/aspectpath/pkg/inventory"
)

func TestSelectReportable_EmptyWindow(t *testing.T) {
	window := map[int]Result{
		0: {Cost: CostUnreachable},
		1: {Cost: CostUnreachable},
	}
	if got := SelectReportable(window); got != nil {
		t.Fatalf("SelectReportable = %v, want nil", got)
	}
}

func TestSelectReportable_BaselinePastEmptyOffsets(t *testing.T) {
	p := []aspect.Aspect{aspect.Aqua, aspect.Victus, aspect.Terra}
	window := map[int]Result{
		0: {Cost: CostUnreachable},
		1: {Paths: [][]aspect.Aspect{p}, Cost: 5},
		2: {Paths: [][]aspect.Aspect{p}, Cost: 7},
		3: {Paths: [][]aspect.Aspect{p}, Cost: 5},
	}

	alts := SelectReportable(window)
	if len(alts) != 2 {
		t.Fatalf("got %d alternatives, want 2: %v", len(alts), alts)
	}
	if alts[0].Offset != 1 || alts[0].Result.Cost != 5 {
		t.Errorf("baseline = %+v, want offset 1 cost 5", alts[0])
	}
	if alts[1].Offset != 3 {
		t.Errorf("second alternative offset = %d, want 3 (offset 2 is costlier)", alts[1].Offset)
	}
}

func TestSelectReportable_CheaperLongerPath(t *testing.T) {
	// Potentia is the only aspect composed from both ordo and ignis, so
	// every length-3 walk between them pays for it, and it is nearly out
	// of stock. One length longer dodges it through instrumentum and
	// telum, both well stocked.
	g := graph.NewComposition()
	inv, err := inventory.New(map[aspect.Aspect]int{
		aspect.Ordo:         9,
		aspect.Ignis:        9,
		aspect.Potentia:     1,
		aspect.Instrumentum: 9,
		aspect.Telum:        9,
	})
	if err != nil {
		t.Fatalf("inventory.New failed: %v", err)
	}
	s := New(g, inv)

	window, err := s.FindWindow(context.Background(), aspect.Ordo, aspect.Ignis, 3, 2)
	if err != nil {
		t.Fatalf("FindWindow failed: %v", err)
	}

	alts := SelectReportable(window)
	if len(alts) != 2 {
		t.Fatalf("got %d alternatives, want 2: %v", len(alts), alts)
	}
	if alts[0].Offset != 0 || alts[0].Result.Cost != 10 {
		t.Errorf("baseline = offset %d cost %d, want offset 0 cost 10",
			alts[0].Offset, alts[0].Result.Cost)
	}
	wantBaseline := [][]aspect.Aspect{{aspect.Ordo, aspect.Potentia, aspect.Ignis}}
	if !reflect.DeepEqual(alts[0].Result.Paths, wantBaseline) {
		t.Errorf("baseline paths = %v, want %v", alts[0].Result.Paths, wantBaseline)
	}
	if alts[1].Offset != 1 || alts[1].Result.Cost != 3 {
		t.Errorf("alternative = offset %d cost %d, want offset 1 cost 3",
			alts[1].Offset, alts[1].Result.Cost)
	}
	wantAlt := [][]aspect.Aspect{{aspect.Ordo, aspect.Instrumentum, aspect.Telum, aspect.Ignis}}
	if !reflect.DeepEqual(alts[1].Result.Paths, wantAlt) {
		t.Errorf("alternative paths = %v, want %v", alts[1].Result.Paths, wantAlt)
	}
}
