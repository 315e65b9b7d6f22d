package component

// Abilities defines how many jumps and dashes the entity may chain before
// touching the ground again. Jumps counts the ground jump.
type Abilities struct {
	Jumps     int
	WallJumps int
	Dashes    int
}

var AbilitiesComponent = NewComponent[Abilities]()
