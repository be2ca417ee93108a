package component

// Cake tracks the current cake. Visual == 0 means the cake is absent
// (eaten and not yet respawned).
type Cake struct {
	I      float64
	J      float64
	Visual uint64
}

func (c *Cake) Present() bool {
	return c != nil && c.Visual != 0
}

var CakeComponent = NewComponent[Cake]()

type CakePolicy string

const (
	CakeOrbit   CakePolicy = "orbit"
	CakeRespawn CakePolicy = "respawn"
	CakeScript  CakePolicy = "script"
)

// CakeMotion holds the tuning for whichever policy moves the cake.
type CakeMotion struct {
	Policy CakePolicy
	// Omega is the angular speed of the orbit path in rad/s.
	Omega float64
	// Lift is the fixed height of an orbiting cake.
	Lift float64
	// SpawnLift is added to the cell height of a respawned cake.
	SpawnLift     float64
	ExpiryPenalty int
	RespawnTimer  Timer
	// GameOverScore ends the session when the score drops to it. Nil
	// disables the rule.
	GameOverScore *int

	ScriptPath string
}

var CakeMotionComponent = NewComponent[CakeMotion]()

type CakeTag struct{}

var CakeTagComponent = NewComponent[CakeTag]()
