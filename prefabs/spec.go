package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const GameSpecFile = "game.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type GameSpec struct {
	Name   string     `yaml:"name"`
	Board  BoardSpec  `yaml:"board"`
	Player PlayerSpec `yaml:"player"`
	Cake   CakeSpec   `yaml:"cake"`
	Camera CameraSpec `yaml:"camera"`
}

type BoardSpec struct {
	SizeI        int     `yaml:"size_i"`
	SizeJ        int     `yaml:"size_j"`
	HeightJitter float64 `yaml:"height_jitter"`
}

type PlayerSpec struct {
	Step     float64       `yaml:"step"`
	Cooldown time.Duration `yaml:"cooldown"`
}

type CakeSpec struct {
	Policy        string        `yaml:"policy"`
	Omega         float64       `yaml:"omega"`
	Lift          float64       `yaml:"lift"`
	SpawnLift     float64       `yaml:"spawn_lift"`
	RespawnEvery  time.Duration `yaml:"respawn_every"`
	ExpiryPenalty int           `yaml:"expiry_penalty"`
	Script        string        `yaml:"script"`
	GameOverScore *int          `yaml:"game_over_score"`
}

type CameraSpec struct {
	Tracking    bool     `yaml:"tracking"`
	Translation Vec3Spec `yaml:"translation"`
	FOV         float32  `yaml:"fov"`
	Near        float32  `yaml:"near"`
	Far         float32  `yaml:"far"`
}

type Vec3Spec struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// DefaultGameSpec mirrors game.yaml and fills any field the file leaves
// zero.
func DefaultGameSpec() GameSpec {
	return GameSpec{
		Name:   "cakechase",
		Board:  BoardSpec{SizeI: 14, SizeJ: 21, HeightJitter: 0.1},
		Player: PlayerSpec{Step: 0.1, Cooldown: 100 * time.Millisecond},
		Cake: CakeSpec{
			Policy:        "respawn",
			Omega:         0.4,
			Lift:          0.4,
			SpawnLift:     0.2,
			RespawnEvery:  5 * time.Second,
			ExpiryPenalty: 3,
			Script:        "cake_orbit.tengo",
		},
		Camera: CameraSpec{
			Tracking:    true,
			Translation: Vec3Spec{X: -2, Y: 2.5, Z: 5},
			FOV:         0.785398,
			Near:        0.1,
			Far:         100,
		},
	}
}

// LoadGameSpec reads game.yaml over the defaults and validates the result.
func LoadGameSpec() (GameSpec, error) {
	data, err := Load(GameSpecFile)
	if err != nil {
		return GameSpec{}, fmt.Errorf("prefabs: load %s: %w", GameSpecFile, err)
	}
	return ParseGameSpec(data)
}

// ParseGameSpec decodes YAML over the defaults and validates the result.
func ParseGameSpec(data []byte) (GameSpec, error) {
	spec := DefaultGameSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return GameSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", GameSpecFile, err)
	}
	if err := spec.Validate(); err != nil {
		return GameSpec{}, err
	}
	return spec, nil
}

func (s GameSpec) Validate() error {
	if s.Board.SizeI < 2 || s.Board.SizeJ < 2 {
		return fmt.Errorf("%w: board must be at least 2x2, got %dx%d", ErrInvalidSpec, s.Board.SizeI, s.Board.SizeJ)
	}
	if s.Board.HeightJitter < 0 {
		return fmt.Errorf("%w: height_jitter must be >= 0", ErrInvalidSpec)
	}
	if s.Player.Step <= 0 {
		return fmt.Errorf("%w: player step must be > 0", ErrInvalidSpec)
	}
	if s.Player.Cooldown < 0 {
		return fmt.Errorf("%w: player cooldown must be >= 0", ErrInvalidSpec)
	}
	switch s.Cake.Policy {
	case "orbit", "respawn", "script":
	default:
		return fmt.Errorf("%w: unknown cake policy %q", ErrInvalidSpec, s.Cake.Policy)
	}
	if s.Cake.Policy == "respawn" && s.Cake.RespawnEvery <= 0 {
		return fmt.Errorf("%w: respawn_every must be > 0", ErrInvalidSpec)
	}
	if s.Cake.Policy == "script" && s.Cake.Script == "" {
		return fmt.Errorf("%w: script policy needs a script", ErrInvalidSpec)
	}
	if s.Camera.FOV <= 0 || s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near {
		return fmt.Errorf("%w: bad camera frustum", ErrInvalidSpec)
	}
	return nil
}
