package entity

// Player is the per-identity session record. CurrentGameID always points at a
// valid pool index; it starts at the sentinel and moves only on reassignment.
type Player struct {
	ID            string `json:"id"`
	CurrentGameID int    `json:"current_game_id"`
	Attempts      int    `json:"attempts"`
	Completed     int    `json:"completed"`
}

// NewPlayer returns a freshly registered player assigned to the sentinel.
func NewPlayer(id string) *Player {
	return &Player{
		ID:            id,
		CurrentGameID: SentinelGameID,
	}
}
