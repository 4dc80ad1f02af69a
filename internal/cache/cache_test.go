package cache

import "testing"

func TestCache_GetSet(t *testing.T) {
	c := New[int, string](0)
	if _, ok := c.Get(1); ok {
		t.Fatal("empty cache should miss")
	}
	c.Set(1, "one")
	if v, ok := c.Get(1); !ok || v != "one" {
		t.Errorf("Get(1) = %q, %v", v, ok)
	}
	if !c.Delete(1) || c.Delete(1) {
		t.Error("Delete should report presence exactly once")
	}
	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss", st)
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[int, int](0)
	calls := 0
	create := func() int { calls++; return 42 }
	for range 3 {
		if v := c.GetOrCreate(7, create); v != 42 {
			t.Fatalf("GetOrCreate = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCache_Eviction(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	c.Get(0) // 0 is now the most recent
	c.Set(4, 4)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 after evicting to 3/4 of the limit", c.Len())
	}
	for _, k := range []int{0, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("recent key %d was evicted", k)
		}
	}
	if _, ok := c.Get(1); ok {
		t.Error("least recently used key 1 survived")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}
