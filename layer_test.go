package goban

import (
	"errors"
	"testing"
)

func TestLayerSetGet(t *testing.T) {
	l := NewLayer[StoneColor](9, 9)
	if _, _, err := l.Set(Pos(3, 4), StoneBlack); err != nil {
		t.Fatal(err)
	}
	got, ok := l.Get(Pos(3, 4))
	if !ok || got != StoneBlack {
		t.Errorf("Get = %v, %v", got, ok)
	}
	if _, ok := l.Get(Pos(4, 3)); ok {
		t.Error("unset position reported present")
	}
}

func TestLayerSetReturnsPrevious(t *testing.T) {
	l := NewLayer[StoneColor](9, 9)
	_, had, _ := l.Set(Pos(0, 0), StoneBlack)
	if had {
		t.Error("first set reported a previous value")
	}
	prev, had, _ := l.Set(Pos(0, 0), StoneWhite)
	if !had || prev != StoneBlack {
		t.Errorf("second set prev = %v, had = %v", prev, had)
	}
}

func TestLayerOutOfBounds(t *testing.T) {
	l := NewLayer[StoneColor](9, 9)
	for _, p := range []Position{Pos(-1, 0), Pos(0, -1), Pos(9, 0), Pos(0, 9)} {
		if _, _, err := l.Set(p, StoneBlack); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v) err = %v, want ErrOutOfBounds", p, err)
		}
		if _, _, err := l.Remove(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Remove(%v) err = %v, want ErrOutOfBounds", p, err)
		}
	}
	if l.Len() != 0 {
		t.Errorf("rejected writes left %d entries", l.Len())
	}
}

func TestLayerRemove(t *testing.T) {
	l := NewLayer[int](9, 9)
	l.Set(Pos(1, 1), 42)
	prev, had, err := l.Remove(Pos(1, 1))
	if err != nil || !had || prev != 42 {
		t.Errorf("Remove = %v, %v, %v", prev, had, err)
	}
	_, had, err = l.Remove(Pos(1, 1))
	if err != nil || had {
		t.Errorf("second Remove = %v, %v", had, err)
	}
}

func TestLayerCloneIndependent(t *testing.T) {
	l := NewLayer[int](9, 9)
	l.Set(Pos(2, 2), 1)
	c := l.Clone()
	c.Set(Pos(3, 3), 2)
	l.Remove(Pos(2, 2))

	if _, ok := c.Get(Pos(2, 2)); !ok {
		t.Error("clone lost entry after original mutation")
	}
	if _, ok := l.Get(Pos(3, 3)); ok {
		t.Error("original gained entry from clone mutation")
	}
}

func TestLayerEqual(t *testing.T) {
	a := NewLayer[int](9, 9)
	b := NewLayer[int](9, 9)
	a.Set(Pos(1, 2), 3)
	if a.Equal(b) {
		t.Error("layers with different sizes reported equal")
	}
	b.Set(Pos(1, 2), 3)
	if !a.Equal(b) {
		t.Error("identical layers reported unequal")
	}
	b.Set(Pos(1, 2), 4)
	if a.Equal(b) {
		t.Error("layers with different values reported equal")
	}
}

func TestLayerClear(t *testing.T) {
	l := NewLayer[int](9, 9)
	l.Set(Pos(0, 0), 1)
	l.Set(Pos(8, 8), 2)
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len after Clear = %d", l.Len())
	}
}
