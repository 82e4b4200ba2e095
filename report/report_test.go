package report

import (
	"testing"

	"github.com/google/uuid"
)

func TestCollectingSinkPreservesOrder(t *testing.T) {
	s := NewCollectingSink()
	id := uuid.New()
	s.Emit(OverallSuccessMessage{base: base{ID: id}, File: "a.vpr", Backend: "z3"})
	s.Emit(FinalMarker{base: base{ID: id}, File: "a.vpr"})

	got := s.Messages()
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if _, ok := got[0].(OverallSuccessMessage); !ok {
		t.Fatal("expected first message to be OverallSuccessMessage")
	}
	if _, ok := got[1].(FinalMarker); !ok {
		t.Fatal("expected second message to be FinalMarker")
	}
}

func TestMessageJobIDRoundTrips(t *testing.T) {
	id := uuid.New()
	var m Message = ExceptionReport{base: base{ID: id}, File: "a.vpr", Kind: "configuration-error"}
	if m.JobID() != id {
		t.Fatal("expected JobID to return the id stored in base")
	}
}
