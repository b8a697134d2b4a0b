package ecs

import "testing"

// stub components used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
	if w.Len() != 1 {
		t.Fatalf("Len = %d; want 1", w.Len())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestAddReplacesExisting(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})
	w.Add(id, testComp{val: 2})

	if got := w.Get(id, ComponentType(1)).(testComp).val; got != 2 {
		t.Fatalf("val = %d; want 2", got)
	}
	if w.Count(ComponentType(1)) != 1 {
		t.Fatalf("Count = %d; want 1 after replace", w.Count(ComponentType(1)))
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
	if w.Len() != 0 {
		t.Fatalf("Len = %d; want 0", w.Len())
	}
}

func TestDestroyedSlotIsReusedWithNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.Add(old, testComp{val: 1})
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.Index() != old.Index() {
		t.Fatalf("expected slot %d to be reused, got %d", old.Index(), fresh.Index())
	}
	if fresh == old {
		t.Fatal("reused slot must carry a new generation")
	}
	if w.Alive(old) {
		t.Fatal("stale ID must not report alive after slot reuse")
	}
	if w.Get(old, ComponentType(1)) != nil || w.Get(fresh, ComponentType(1)) != nil {
		t.Fatal("reused slot must start with no components")
	}
	// Writing through the stale ID must not touch the new occupant.
	w.Add(old, testComp{val: 99})
	if w.Has(fresh, ComponentType(1)) {
		t.Fatal("Add through stale ID leaked into the new entity")
	}
}

func TestDestroyTwiceIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.DestroyEntity(id)
	w.DestroyEntity(id)
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a.Index() == b.Index() {
		t.Fatal("double destroy pushed the slot onto the free list twice")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestQueryKeepsInsertionOrderUntilRemoval(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := range 4 {
		id := w.CreateEntity()
		w.Add(id, testComp{val: i})
		ids = append(ids, id)
	}
	got := w.Query(ComponentType(1))
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("Query order = %v; want %v", got, ids)
		}
	}

	// Swap-remove moves the last entity into the hole.
	w.DestroyEntity(ids[1])
	got = w.Query(ComponentType(1))
	want := []EntityID{ids[0], ids[3], ids[2]}
	if len(got) != len(want) {
		t.Fatalf("Query = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Query = %v; want %v", got, want)
		}
	}
	if v := w.Get(ids[3], ComponentType(1)).(testComp).val; v != 3 {
		t.Fatalf("moved component has val %d; want 3", v)
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, testComp{})

	dead := w.CreateEntity()
	w.Add(dead, testComp{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	for _, id := range results {
		if id == dead {
			t.Fatal("Query returned a destroyed entity")
		}
	}
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestCount(t *testing.T) {
	w := NewWorld()
	if w.Count(ComponentType(1)) != 0 {
		t.Fatal("Count on empty world should be 0")
	}
	for range 3 {
		w.Add(w.CreateEntity(), testComp{})
	}
	w.Add(w.CreateEntity(), otherComp{})
	if got := w.Count(ComponentType(1)); got != 3 {
		t.Fatalf("Count = %d; want 3", got)
	}
}
