package feed

import "testing"

func TestPager_120Items(t *testing.T) {
	p := NewPager(50)
	p.SetTotal(120)

	if got := p.TotalPages(); got != 3 {
		t.Fatalf("TotalPages() = %d, want 3", got)
	}
	if p.Jump("4") {
		t.Error("Jump(\"4\") = true, want false")
	}
	if got := p.Current(); got != 1 {
		t.Errorf("Current() after rejected jump = %d, want 1", got)
	}
	if !p.Jump("2") {
		t.Fatal("Jump(\"2\") = false, want true")
	}
	start, end := p.Bounds()
	if start != 50 || end != 100 {
		t.Errorf("Bounds() = [%d,%d), want [50,100)", start, end)
	}
	p.Next()
	start, end = p.Bounds()
	if start != 100 || end != 120 {
		t.Errorf("Bounds() on last page = [%d,%d), want [100,120)", start, end)
	}
}

func TestPager_JumpRejects(t *testing.T) {
	tests := []string{"", "abc", "0", "-1", "1.5", "99"}
	for _, input := range tests {
		p := NewPager(10)
		p.SetTotal(30)
		p.JumpTo(2)
		if p.Jump(input) {
			t.Errorf("Jump(%q) = true, want false", input)
		}
		if p.Current() != 2 {
			t.Errorf("Jump(%q) changed page to %d", input, p.Current())
		}
	}
}

func TestPager_Edges(t *testing.T) {
	p := NewPager(10)
	p.SetTotal(25)

	if p.Prev() {
		t.Error("Prev() on first page = true, want false")
	}
	p.Next()
	p.Next()
	if p.Next() {
		t.Error("Next() on last page = true, want false")
	}
	if p.Current() != 3 {
		t.Errorf("Current() = %d, want 3", p.Current())
	}
}

func TestPager_SetTotalClamps(t *testing.T) {
	p := NewPager(10)
	p.SetTotal(50)
	p.JumpTo(5)

	p.SetTotal(12)
	if p.Current() != 2 {
		t.Errorf("Current() after shrink = %d, want 2", p.Current())
	}

	p.SetTotal(0)
	if p.Current() != 1 || p.TotalPages() != 1 {
		t.Errorf("empty list: Current() = %d, TotalPages() = %d, want 1, 1", p.Current(), p.TotalPages())
	}
	start, end := p.Bounds()
	if start != 0 || end != 0 {
		t.Errorf("Bounds() on empty list = [%d,%d), want [0,0)", start, end)
	}
}

func TestNewPager_DefaultSize(t *testing.T) {
	if got := NewPager(0).Size(); got != DefaultPageSize {
		t.Errorf("NewPager(0).Size() = %d, want %d", got, DefaultPageSize)
	}
}
