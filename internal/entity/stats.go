package entity

// SolverStats is one leaderboard row: an identity and its solve count.
type SolverStats struct {
	PlayerID string `json:"player_id"`
	Solves   int    `json:"solves"`
}
