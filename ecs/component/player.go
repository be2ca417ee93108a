package component

// Player is the grid walker. I and J are fractional board coordinates;
// Visual references the entity whose Transform shows the player.
type Player struct {
	I        float64
	J        float64
	Rotation float64
	Step     float64
	Cooldown Timer
	Visual   uint64
}

var PlayerComponent = NewComponent[Player]()
