package core

import (
	"errors"
	"testing"
)

func TestVectorTableDefaults(t *testing.T) {
	table := NewVectorTable()
	for i, h := range table {
		if h == nil {
			t.Fatalf("slot %d has no handler", i)
		}
	}
}

func TestUnhandledTrap(t *testing.T) {
	for _, vector := range []int{0, 55, VectorCount - 1, VectorCount, -3} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("vector %d: expected error panic, got %v", vector, r)
				}
				if !errors.Is(err, ErrUnhandledTrap) {
					t.Errorf("vector %d: expected ErrUnhandledTrap, got %v", vector, err)
				}
				var trap *TrapError
				if !errors.As(err, &trap) || trap.Vector != vector {
					t.Errorf("vector %d: got %v", vector, err)
				}
			}()
			NewVectorTable().Dispatch(vector)
		}()
	}
}

func TestVectorTableCustomSlot(t *testing.T) {
	table := NewVectorTable()
	got := -1
	table[7] = func(v int) { got = v }

	table.Dispatch(7)
	if got != 7 {
		t.Errorf("custom handler got %d", got)
	}
}
