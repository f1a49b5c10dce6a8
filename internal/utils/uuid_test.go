package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a := g.Generate()
	b := g.Generate()

	if a == b {
		t.Fatal("expected distinct ids")
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("generated id is not a uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	// v7 ids sort by creation time
	if a > b {
		t.Errorf("expected %s < %s", a, b)
	}
}
