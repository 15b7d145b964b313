package entity

// SystemIdentity is the creator recorded on the sentinel game.
const SystemIdentity = "system"

// SentinelGameID is the reserved index of the permanently blank game. It is
// never handed out by reassignment.
const SentinelGameID = 0

// Game is one puzzle in the shared pool. The board never changes after the
// game is appended; only the counters move.
type Game struct {
	Board     Grid   `json:"board"`
	Creator   string `json:"creator"`
	Attempts  int    `json:"attempts"`
	Completed int    `json:"completed"`
}

// NewGame returns a fresh game for the given board and creator.
func NewGame(board Grid, creator string) *Game {
	return &Game{
		Board:   board,
		Creator: creator,
	}
}

// NewSentinelGame returns the reserved index-0 game: an all-blank board owned
// by the system identity.
func NewSentinelGame() *Game {
	return NewGame(BlankGrid(), SystemIdentity)
}
