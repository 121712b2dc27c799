package module

import "testing"

type statsPort interface{ Kind() string }

type fakePort struct{}

func (fakePort) Kind() string { return "stats" }

func TestRegistryRoundtrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("stats", fakePort{})

	got, ok := PortsAs[statsPort]("stats")
	if !ok || got.Kind() != "stats" {
		t.Fatalf("PortsAs failed: %v %v", got, ok)
	}

	if _, ok := PortsAs[statsPort]("missing"); ok {
		t.Fatal("expected miss for unknown name")
	}

	// wrong type assertion fails cleanly
	if _, ok := PortsAs[interface{ Nope() }]("stats"); ok {
		t.Fatal("expected type mismatch to fail")
	}
}
