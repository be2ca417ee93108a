// Package config resolves the command-line options shared by the window
// and terminal front-ends. Defaults come from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/milk9111/cakechase/prefabs"
)

const (
	EnvCamera = "CAKECHASE_CAMERA"
	EnvCake   = "CAKECHASE_CAKE"
	EnvSeed   = "CAKECHASE_SEED"
	EnvDebug  = "CAKECHASE_DEBUG"
)

var ErrInvalidOption = errors.New("config: invalid option")

type Options struct {
	// Camera is "tracking", "orbit" or empty to keep the spec value.
	Camera string
	// Cake is a cake policy name or empty to keep the spec value.
	Cake  string
	Seed  int64
	Debug bool
}

// LoadEnv reads .env files into the process environment. Missing files are
// not an error; existing variables win over file values.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", name, err)
		}
		log.Printf("config: loaded %s", name)
	}
	return nil
}

// Bind registers the shared flags with defaults taken from the
// environment and returns the options they fill.
func Bind(flags *flag.FlagSet) *Options {
	opts := &Options{}
	flags.StringVar(&opts.Camera, "camera", os.Getenv(EnvCamera), "camera mode: tracking or orbit")
	flags.StringVar(&opts.Cake, "cake", os.Getenv(EnvCake), "cake policy: orbit, respawn or script")
	flags.Int64Var(&opts.Seed, "seed", envInt64(EnvSeed), "random seed (0 picks one from the clock)")
	flags.BoolVar(&opts.Debug, "debug", envBool(EnvDebug), "enable debug overlay")
	return opts
}

// Apply overrides spec fields named by the options and validates the
// result.
func (o Options) Apply(spec prefabs.GameSpec) (prefabs.GameSpec, error) {
	switch o.Camera {
	case "":
	case "tracking":
		spec.Camera.Tracking = true
	case "orbit":
		spec.Camera.Tracking = false
	default:
		return spec, fmt.Errorf("%w: camera %q", ErrInvalidOption, o.Camera)
	}
	if o.Cake != "" {
		spec.Cake.Policy = o.Cake
	}
	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}

// ResolvedSeed returns the seed to use, drawing one from the clock when
// none was given.
func (o Options) ResolvedSeed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}

func envInt64(key string) int64 {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, v, err)
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, v, err)
		return false
	}
	return b
}
