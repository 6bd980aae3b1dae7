package stops

import (
	"strings"
	"testing"
)

func testRoute() []Stop {
	return []Stop{
		{Address: "Jl. Sudirman No. 1, Jakarta", DistanceKm: 2.4, Duration: "9 mins"},
		{Address: "Jl. Thamrin No. 2, Jakarta", DistanceKm: 1.1, Duration: "5 mins"},
		{Address: "Jl. Gatot Subroto No. 12, Jakarta", DistanceKm: 4.8, Duration: "15 mins"},
	}
}

func TestMarkDoneIsIdempotent(t *testing.T) {
	tr := NewTracker()
	tr.Replace(testRoute())

	tr.MarkDone(0)
	tr.MarkDone(0)

	if !tr.IsDone(0) {
		t.Fatalf("expected stop 0 to be done")
	}
	if got := tr.DoneCount(); got != 1 {
		t.Fatalf("expected exactly one done stop, got %d", got)
	}
}

func TestMarkDoneThenUndoneLeavesStopPending(t *testing.T) {
	tr := NewTracker()
	tr.Replace(testRoute())

	tr.MarkDone(1)
	tr.MarkUndone(1)

	if tr.IsDone(1) {
		t.Fatalf("expected stop 1 to be pending again")
	}
	if got := tr.DoneCount(); got != 0 {
		t.Fatalf("expected no done stops, got %d", got)
	}
}

func TestMarkUndoneWithoutMarkIsNoOp(t *testing.T) {
	tr := NewTracker()
	tr.Replace(testRoute())

	tr.MarkUndone(2)

	if got := tr.DoneCount(); got != 0 {
		t.Fatalf("expected no done stops, got %d", got)
	}
}

func TestOutOfRangeIndexesAreIgnored(t *testing.T) {
	tr := NewTracker()
	tr.Replace(testRoute())

	tr.MarkDone(-1)
	tr.MarkDone(3)

	if got := tr.DoneCount(); got != 0 {
		t.Fatalf("expected out-of-range marks to be ignored, got %d done", got)
	}
}

func TestReplaceClearsCompletionState(t *testing.T) {
	tr := NewTracker()
	tr.Replace(testRoute())
	tr.MarkDone(0)
	tr.MarkDone(2)

	tr.Replace(testRoute())

	if got := tr.DoneCount(); got != 0 {
		t.Fatalf("expected new route to start pending, got %d done", got)
	}
	if rem := tr.Remaining(); len(rem) != 3 {
		t.Fatalf("expected all 3 stops remaining, got %v", rem)
	}
}

func TestRemainingFollowsRouteOrder(t *testing.T) {
	tr := NewTracker()
	tr.Replace(testRoute())
	tr.MarkDone(1)

	rem := tr.Remaining()
	if len(rem) != 2 || rem[0] != 0 || rem[1] != 2 {
		t.Fatalf("unexpected remaining stops: %v", rem)
	}
}

func TestNavigationURLEncodesDestination(t *testing.T) {
	u := NavigationURL("Jl. Asia Afrika No. 8, Bandung")

	if !strings.HasPrefix(u, "https://www.google.com/maps/dir/?") {
		t.Fatalf("unexpected base url: %s", u)
	}
	if !strings.Contains(u, "api=1") || !strings.Contains(u, "travelmode=driving") {
		t.Fatalf("missing directions parameters: %s", u)
	}
	if !strings.Contains(u, "destination=Jl.+Asia+Afrika+No.+8%2C+Bandung") {
		t.Fatalf("destination not encoded as expected: %s", u)
	}
}
