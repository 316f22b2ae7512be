package metrics

import "testing"

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	buf := make([]uint64, 1<<17) // 1 MiB kept alive below
	after := mc.Snapshot()
	buf[len(buf)-1] = 1

	// Sys should not decrease between snapshots
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
}

func TestMemorySnapshot_HeapGrowth(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{HeapAlloc: 1000}
	if got := before.HeapGrowth(MemorySnapshot{HeapAlloc: 4096}); got != 3096 {
		t.Errorf("HeapGrowth = %d, want 3096", got)
	}
	if got := before.HeapGrowth(MemorySnapshot{HeapAlloc: 10}); got != -990 {
		t.Errorf("HeapGrowth = %d, want -990", got)
	}
}
