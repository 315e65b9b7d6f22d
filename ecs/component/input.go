package component

// Input stores the intent snapshot for a controlled entity. JumpPressed,
// JumpReleased and DashPressed are single-tick edges.
type Input struct {
	MoveX        float64
	MoveY        float64
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool
}

var InputComponent = NewComponent[Input]()
