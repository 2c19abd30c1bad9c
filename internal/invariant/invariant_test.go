package invariant

import (
	"fmt"
	"strings"
	"testing"
)

func raiseAndRecover() (err error) {
	defer Recover(&err)
	Raise("RunAI", "monster on top of player", map[string]any{"entity": 4, "pos": "(1,2)"})
	return nil
}

func TestRecoverCapturesViolation(t *testing.T) {
	err := raiseAndRecover()
	if err == nil {
		t.Fatal("expected an error from a recovered violation")
	}
	v, ok := As(fmt.Errorf("step: %w", err))
	if !ok {
		t.Fatal("As should see through wrapping")
	}
	if v.Phase != "RunAI" {
		t.Errorf("phase = %q, want RunAI", v.Phase)
	}
	msg := err.Error()
	if !strings.Contains(msg, "entity=4") || !strings.Contains(msg, "pos=(1,2)") {
		t.Errorf("message lacks context: %s", msg)
	}
	if strings.Index(msg, "entity=") > strings.Index(msg, "pos=") {
		t.Errorf("fields should be sorted: %s", msg)
	}
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("expected foreign panic to propagate, got %v", r)
		}
	}()
	var err error
	func() {
		defer Recover(&err)
		panic("boom")
	}()
	t.Fatal("unreachable")
}
