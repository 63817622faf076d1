package game

// TurnState is the phase of the turn machine. Exactly one state is current
// at any time.
type TurnState uint8

const (
	AwaitingInput TurnState = iota
	PlayerTurn
	MonsterTurn
)

func (t TurnState) String() string {
	switch t {
	case AwaitingInput:
		return "AwaitingInput"
	case PlayerTurn:
		return "PlayerTurn"
	case MonsterTurn:
		return "MonsterTurn"
	}
	return "unknown"
}

// next is the state entered when the current phase ends its turn.
// AwaitingInput only advances on a directional key.
func (t TurnState) next() TurnState {
	switch t {
	case AwaitingInput:
		return PlayerTurn
	case PlayerTurn:
		return MonsterTurn
	}
	return AwaitingInput
}
