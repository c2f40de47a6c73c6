package equipment

// Preferences are the calculator settings a player saved last: the
// profile the UI restores when they come back.
type Preferences struct {
	PlayerID  string      `json:"player_id"`
	Profile   UnitProfile `json:"profile"`
	UpdatedAt int64       `json:"updated_at"`
}
