package core

import (
	"slices"
	"strings"
	"testing"
)

type stubSim struct{ size Size }

func (s *stubSim) Name() string   { return "stub" }
func (s *stubSim) Size() Size     { return s.size }
func (s *stubSim) Reset(int64)    {}
func (s *stubSim) Step()          {}
func (s *stubSim) Cells() []uint8 { return make([]uint8, s.size.W*s.size.H) }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) (Sim, error) { return &stubSim{}, nil })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("empty names must be ignored")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("nil factories must be ignored")
	}

	Register("stub", func(cfg map[string]string) (Sim, error) {
		return &stubSim{size: Size{W: 2, H: 3}}, nil
	})
	t.Cleanup(func() { delete(sims, "stub") })

	if !slices.Contains(Names(), "stub") {
		t.Fatalf("Names() = %v, want stub listed", Names())
	}
	sim, err := NewSim("stub", nil)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Size() != (Size{W: 2, H: 3}) {
		t.Fatalf("Size() = %+v", sim.Size())
	}

	_, err = NewSim("missing", nil)
	if err == nil || !strings.Contains(err.Error(), `unknown sim "missing"`) {
		t.Fatalf("NewSim(missing) error = %v", err)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("Lookup(z) must miss")
	}
}
