package system

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// AbilitiesGate answers from the entity's Abilities component. Entities
// without one defer to Fallback.
type AbilitiesGate struct {
	Fallback AbilityGate
}

func (g AbilitiesGate) CanJump(w *ecs.World, e ecs.Entity, index int, wall bool) bool {
	a, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind())
	if !ok {
		return g.fallback().CanJump(w, e, index, wall)
	}
	if wall {
		return index >= 1 && index <= a.WallJumps
	}
	return index >= 1 && index <= a.Jumps
}

func (g AbilitiesGate) CanDash(w *ecs.World, e ecs.Entity, index int) bool {
	a, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind())
	if !ok {
		return g.fallback().CanDash(w, e, index)
	}
	return index >= 1 && index <= a.Dashes
}

func (g AbilitiesGate) fallback() AbilityGate {
	if g.Fallback == nil {
		return DefaultAbilityGate{}
	}
	return g.Fallback
}

const abilityDispatchScript = `
if __query == "jump" {
	__result = can_jump(__index, __wall, __unlocks)
} else if __query == "dash" {
	__result = can_dash(__index, __unlocks)
}
`

// ScriptAbilityGate evaluates a tengo script defining
// can_jump(index, wall, unlocks) and can_dash(index, unlocks). unlocks is a
// map built from the entity's Abilities component. Script errors deny the
// attempt.
type ScriptAbilityGate struct {
	path     string
	mu       sync.Mutex
	compiled *tengo.Compiled
}

// NewScriptAbilityGate compiles the named script from prefabs/scripts.
func NewScriptAbilityGate(path string) (*ScriptAbilityGate, error) {
	g := &ScriptAbilityGate{path: path}
	if err := g.Reload(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewScriptAbilityGateSource compiles src directly.
func NewScriptAbilityGateSource(src []byte) (*ScriptAbilityGate, error) {
	compiled, err := compileAbilityScript(src)
	if err != nil {
		return nil, err
	}
	return &ScriptAbilityGate{compiled: compiled}, nil
}

// Reload recompiles the script from disk or the embedded copy. On failure
// the previous script stays active.
func (g *ScriptAbilityGate) Reload() error {
	if g.path == "" {
		return nil
	}
	src, err := prefabs.LoadScript(g.path)
	if err != nil {
		return fmt.Errorf("ability gate: load %s: %w", g.path, err)
	}
	compiled, err := compileAbilityScript(src)
	if err != nil {
		return fmt.Errorf("ability gate: compile %s: %w", g.path, err)
	}
	g.mu.Lock()
	g.compiled = compiled
	g.mu.Unlock()
	return nil
}

// Path returns the script path the gate was loaded from.
func (g *ScriptAbilityGate) Path() string {
	return g.path
}

func compileAbilityScript(src []byte) (*tengo.Compiled, error) {
	full := string(src) + "\n" + abilityDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__query", "")
	_ = script.Add("__index", 0)
	_ = script.Add("__wall", false)
	_ = script.Add("__unlocks", map[string]interface{}{})
	_ = script.Add("__result", false)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (g *ScriptAbilityGate) CanJump(w *ecs.World, e ecs.Entity, index int, wall bool) bool {
	return g.eval(w, e, "jump", index, wall)
}

func (g *ScriptAbilityGate) CanDash(w *ecs.World, e ecs.Entity, index int) bool {
	return g.eval(w, e, "dash", index, false)
}

func (g *ScriptAbilityGate) eval(w *ecs.World, e ecs.Entity, query string, index int, wall bool) (allowed bool) {
	if g == nil {
		return firstOnly(index)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	// tengo's VM panics on some runtime faults (integer division by zero)
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ability gate: entity=%s %s index=%d: panic: %v", e, query, index, r)
			allowed = false
		}
	}()
	if g.compiled == nil {
		return firstOnly(index)
	}

	unlocks := map[string]interface{}{}
	if a, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind()); ok {
		unlocks["jumps"] = a.Jumps
		unlocks["wall_jumps"] = a.WallJumps
		unlocks["dashes"] = a.Dashes
	}

	vars := []struct {
		name  string
		value interface{}
	}{
		{"__query", query},
		{"__index", index},
		{"__wall", wall},
		{"__unlocks", unlocks},
		{"__result", false},
	}
	for _, v := range vars {
		if err := g.compiled.Set(v.name, v.value); err != nil {
			log.Printf("ability gate: entity=%s set %s: %v", e, v.name, err)
			return false
		}
	}
	if err := g.compiled.Run(); err != nil {
		log.Printf("ability gate: entity=%s %s index=%d: %v", e, query, index, err)
		return false
	}
	return g.compiled.Get("__result").Bool()
}
