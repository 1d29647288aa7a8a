package history

import "testing"

func TestMemoryLog(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	if err := m.Append("1 2 +"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := m.Append("."); err != nil {
		t.Fatalf("Append: %v", err)
	}

	want := []string{"1 2 +", "."}
	got := m.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Lines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMemoryLogIsolatesSnapshot(t *testing.T) {
	m := NewMemory()
	m.Append("one")
	lines := m.Lines()
	lines[0] = "mutated"
	if m.Lines()[0] != "one" {
		t.Fatal("Lines() must return a copy, not the live slice")
	}
}
