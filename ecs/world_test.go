package ecs

import (
	"testing"

	"github.com/milk9111/platformer/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldSlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[int]().Kind()

	old := CreateEntity(w)
	require.NoError(t, Add(w, old, kind, intPtr(7)))
	require.True(t, DestroyEntity(w, old))

	reused := CreateEntity(w)
	assert.Equal(t, old.id(), reused.id(), "freed slot is reused")
	assert.NotEqual(t, old, reused)
	assert.False(t, IsAlive(w, old))
	assert.True(t, IsAlive(w, reused))

	_, ok := Get(w, reused, kind)
	assert.False(t, ok, "components do not survive slot reuse")
	assert.ErrorIs(t, Add(w, old, kind, intPtr(1)), component.ErrEntityNotAlive)
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]().Kind()
	names := component.NewComponent[string]().Kind()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		check func(t *testing.T)
	}{
		{
			name: "add_and_get_returns_stored_pointer",
			check: func(t *testing.T) {
				v := intPtr(3)
				require.NoError(t, Add(w, e1, ints, v))
				got, ok := Get(w, e1, ints)
				require.True(t, ok)
				assert.Same(t, v, got)
				*got = 4
				again, _ := Get(w, e1, ints)
				assert.Equal(t, 4, *again)
			},
		},
		{
			name: "add_replaces_existing",
			check: func(t *testing.T) {
				require.NoError(t, Add(w, e1, ints, intPtr(9)))
				got, _ := Get(w, e1, ints)
				assert.Equal(t, 9, *got)
			},
		},
		{
			name: "has_is_per_kind",
			check: func(t *testing.T) {
				assert.True(t, Has(w, e1, ints))
				assert.False(t, Has(w, e1, names))
				assert.False(t, Has(w, e2, ints))
			},
		},
		{
			name: "remove",
			check: func(t *testing.T) {
				require.NoError(t, Add(w, e2, names, stringPtr("solid")))
				assert.True(t, Remove(w, e2, names))
				assert.False(t, Remove(w, e2, names))
				assert.False(t, Has(w, e2, names))
			},
		},
		{
			name: "nil_value_rejected",
			check: func(t *testing.T) {
				assert.ErrorIs(t, Add[int](w, e1, ints, nil), component.ErrNilComponent)
			},
		},
		{
			name: "zero_kind_rejected",
			check: func(t *testing.T) {
				var zero component.ComponentKind[int]
				assert.ErrorIs(t, Add(w, e1, zero, intPtr(1)), component.ErrInvalidComponentKind)
			},
		},
		{
			name: "kinds_of_same_type_are_distinct",
			check: func(t *testing.T) {
				other := component.NewComponent[int]().Kind()
				require.NoError(t, Add(w, e2, other, intPtr(1)))
				assert.False(t, Has(w, e2, ints))
				assert.True(t, Has(w, e2, other))
			},
		},
		{
			name: "destroy_clears_components",
			check: func(t *testing.T) {
				e := CreateEntity(w)
				require.NoError(t, Add(w, e, ints, intPtr(1)))
				require.True(t, DestroyEntity(w, e))
				count := 0
				ForEach(w, ints, func(Entity, *int) { count++ })
				assert.Equal(t, 1, count, "only e1 still holds an int")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestWorldQueries(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]().Kind()
	names := component.NewComponent[string]().Kind()
	floats := component.NewComponent[float64]().Kind()
	flags := component.NewComponent[bool]().Kind()

	all := CreateEntity(w)
	require.NoError(t, Add(w, all, ints, intPtr(1)))
	require.NoError(t, Add(w, all, names, stringPtr("all")))
	require.NoError(t, Add(w, all, floats, float64Ptr(1.5)))
	flag := true
	require.NoError(t, Add(w, all, flags, &flag))

	two := CreateEntity(w)
	require.NoError(t, Add(w, two, ints, intPtr(2)))
	require.NoError(t, Add(w, two, names, stringPtr("two")))

	one := CreateEntity(w)
	require.NoError(t, Add(w, one, ints, intPtr(3)))

	collect := func(run func(func(Entity))) map[Entity]struct{} {
		got := make(map[Entity]struct{})
		run(func(e Entity) { got[e] = struct{}{} })
		return got
	}

	cases := []struct {
		name string
		run  func(func(Entity))
		want []Entity
	}{
		{"foreach", func(f func(Entity)) {
			ForEach(w, ints, func(e Entity, _ *int) { f(e) })
		}, []Entity{all, two, one}},
		{"foreach2", func(f func(Entity)) {
			ForEach2(w, ints, names, func(e Entity, _ *int, _ *string) { f(e) })
		}, []Entity{all, two}},
		{"foreach3", func(f func(Entity)) {
			ForEach3(w, ints, names, floats, func(e Entity, _ *int, _ *string, _ *float64) { f(e) })
		}, []Entity{all}},
		{"foreach4", func(f func(Entity)) {
			ForEach4(w, ints, names, floats, flags, func(e Entity, _ *int, _ *string, _ *float64, _ *bool) { f(e) })
		}, []Entity{all}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, toSet(c.want), collect(c.run))
		})
	}

	t.Run("first", func(t *testing.T) {
		e, v, ok := First(w, names)
		require.True(t, ok)
		assert.Equal(t, all, e)
		assert.Equal(t, "all", *v)

		_, _, ok = First(w, component.NewComponent[uint8]().Kind())
		assert.False(t, ok)
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		visited := 0
		ForEach(w, ints, func(e Entity, _ *int) {
			visited++
			if e == all {
				DestroyEntity(w, two)
			}
		})
		assert.Equal(t, 2, visited, "destroyed entity is skipped")
	})
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	var calls []string
	s := NewScheduler(
		recordSystem{name: "input", calls: &calls},
		nil,
		recordSystem{name: "motion", calls: &calls},
	)
	s.Add(recordSystem{name: "physics", calls: &calls})

	s.Update(NewWorld(), 1.0/60)
	s.Update(NewWorld(), 1.0/60)

	assert.Equal(t, []string{"input", "motion", "physics", "input", "motion", "physics"}, calls)
	assert.Len(t, s.Systems(), 3)
}

type recordSystem struct {
	name  string
	calls *[]string
}

func (r recordSystem) Update(*World, float64) {
	*r.calls = append(*r.calls, r.name)
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}
