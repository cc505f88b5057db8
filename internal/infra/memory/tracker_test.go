package memory

import (
	"context"
	"testing"
)

func TestTracker(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker()

	if _, ok, err := tr.LastNotified(ctx, "id:1"); ok || err != nil {
		t.Fatalf("LastNotified() on empty tracker = ok %v, err %v", ok, err)
	}

	if err := tr.MarkNotified(ctx, "id:1", "t1"); err != nil {
		t.Fatalf("MarkNotified() error = %v", err)
	}
	if err := tr.MarkNotified(ctx, "id:1", "t2"); err != nil {
		t.Fatalf("MarkNotified() error = %v", err)
	}

	tok, ok, err := tr.LastNotified(ctx, "id:1")
	if err != nil || !ok || tok != "t2" {
		t.Errorf("LastNotified() = %q, %v, %v; want t2, true, nil", tok, ok, err)
	}
	if _, ok, _ := tr.LastNotified(ctx, "id:2"); ok {
		t.Error("keys must be independent")
	}
}
