package entities

// SpawnGroup describes one batch of actors a room spawns when its encounter starts
type SpawnGroup struct {
	// ActorTypes is the pool each spawned actor is drawn from; an empty pool skips the group
	ActorTypes []string `json:"actor_types"`

	Count int `json:"count"`

	// RequireDestroy marks actors the player must eliminate to clear the room
	RequireDestroy bool `json:"require_destroy"`
}
