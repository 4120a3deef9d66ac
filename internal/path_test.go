package internal

import (
	"testing"
)

func TestSplitPath(t *testing.T) {
	t.Run("EmptyPath", func(t *testing.T) {
		if segs := SplitPath(""); segs != nil {
			t.Errorf("Expected no segments, got %v", segs)
		}
	})

	t.Run("MixedSegments", func(t *testing.T) {
		segs := SplitPath("users.0.name.01")
		if len(segs) != 4 {
			t.Fatalf("Expected 4 segments, got %d", len(segs))
		}
		if segs[0].IsInt() || segs[0].String() != "users" {
			t.Errorf("Expected string key 'users', got %v", segs[0])
		}
		if !segs[1].IsInt() || segs[1].Int() != 0 {
			t.Errorf("Expected int key 0, got %v", segs[1])
		}
		if segs[3].IsInt() {
			t.Error("'01' should stay a string key")
		}
	})

	t.Run("EmptySegments", func(t *testing.T) {
		segs := SplitPath("a..b")
		if len(segs) != 3 || segs[1].String() != "" {
			t.Errorf("Expected an empty middle segment, got %v", segs)
		}
	})

	t.Run("JoinIsInverse", func(t *testing.T) {
		for _, p := range []string{"a", "a.b.c", "list.3.x", "-1.y"} {
			if got := JoinPath(SplitPath(p)); got != p {
				t.Errorf("JoinPath(SplitPath(%q)) = %q", p, got)
			}
		}
	})
}

func TestLookupAssignRemove(t *testing.T) {
	newTree := func() *Map {
		root := NewMap(0)
		user := NewMap(0)
		user.Set(StringKey("name"), "Ann")
		root.Set(StringKey("user"), user)
		root.Set(StringKey("flag"), true)
		return root
	}

	t.Run("Lookup", func(t *testing.T) {
		root := newTree()

		v, ok := Lookup(root, SplitPath("user.name"))
		if !ok || v != "Ann" {
			t.Errorf("Expected Ann, got %v (found=%v)", v, ok)
		}
		if _, ok := Lookup(root, SplitPath("flag.child")); ok {
			t.Error("Lookup should not descend into a scalar")
		}
		if v, ok := Lookup(root, nil); !ok || v != root {
			t.Error("Empty path should resolve to the root")
		}
	})

	t.Run("AssignCreatesAndOverwrites", func(t *testing.T) {
		root := newTree()

		Assign(root, SplitPath("a.b"), 1)
		if v, _ := Lookup(root, SplitPath("a.b")); v != 1 {
			t.Errorf("Expected 1, got %v", v)
		}

		Assign(root, SplitPath("flag.x"), "y")
		if v, _ := Lookup(root, SplitPath("flag.x")); v != "y" {
			t.Errorf("Expected scalar intermediate to be replaced, got %v", v)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		root := newTree()

		if Remove(root, SplitPath("user.missing")) {
			t.Error("Removing a missing key should report false")
		}
		if Remove(root, SplitPath("flag.child")) {
			t.Error("Removing below a scalar should report false")
		}
		if !Remove(root, SplitPath("user.name")) {
			t.Error("Removing an existing key should report true")
		}
		if Remove(root, nil) {
			t.Error("Removing the root should report false")
		}
	})
}

func TestPathCache(t *testing.T) {
	t.Run("SplitPathIsCached", func(t *testing.T) {
		pc := DefaultPathCache()
		pc.Clear()

		first := SplitPath("cache.lookup.0")
		second := SplitPath("cache.lookup.0")
		if &first[0] != &second[0] {
			t.Error("Second split should return the cached segments")
		}

		stats := pc.Stats()
		if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 1 {
			t.Errorf("Unexpected stats %+v", stats)
		}
	})

	t.Run("FullShardIsEmptied", func(t *testing.T) {
		pc := &PathCache{}
		shard := pc.shard("seed")

		n := 0
		for i := 0; len(shard.entries) < pathCacheShardLimit; i++ {
			p := JoinPath([]Key{StringKey("p"), IntKey(i)})
			if pc.shard(p) == shard {
				pc.Put(p, []Key{StringKey(p)})
				n++
			}
		}
		if n != pathCacheShardLimit {
			t.Fatalf("Expected %d entries, got %d", pathCacheShardLimit, n)
		}

		pc.Put("seed", []Key{StringKey("seed")})
		if got := len(shard.entries); got != 1 {
			t.Errorf("Expected the shard to restart with 1 entry, got %d", got)
		}
		if pc.Stats().Evictions != int64(pathCacheShardLimit) {
			t.Errorf("Expected %d evictions, got %d", pathCacheShardLimit, pc.Stats().Evictions)
		}
	})

	t.Run("LongPathsSkipped", func(t *testing.T) {
		pc := &PathCache{}
		long := string(make([]byte, pathCacheMaxPathSize+1))
		pc.Put(long, nil)
		if _, ok := pc.Get(long); ok {
			t.Error("Long paths should not be cached")
		}
	})
}
