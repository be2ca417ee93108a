package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/cakechase/prefabs"
)

// cakeScript is a compiled tengo program mapping time to a cake position.
// It reads t, size_i, size_j and omega and assigns i and j.
type cakeScript struct {
	path     string
	compiled *tengo.Compiled
}

var cakeScriptInputs = []string{"t", "size_i", "size_j", "omega"}

func compileCakeScript(path string) (*cakeScript, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, name := range cakeScriptInputs {
		_ = script.Add(name, 0.0)
	}
	_ = script.Add("i", 0.0)
	_ = script.Add("j", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &cakeScript{path: path, compiled: compiled}, nil
}

func (c *cakeScript) eval(t float64, sizeI, sizeJ int, omega float64) (float64, float64, error) {
	values := []float64{t, float64(sizeI), float64(sizeJ), omega}
	for n, name := range cakeScriptInputs {
		if err := c.compiled.Set(name, values[n]); err != nil {
			return 0, 0, fmt.Errorf("set %s: %w", name, err)
		}
	}
	if err := c.compiled.Run(); err != nil {
		return 0, 0, err
	}
	i, err := c.output("i")
	if err != nil {
		return 0, 0, err
	}
	j, err := c.output("j")
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

func (c *cakeScript) output(name string) (float64, error) {
	v := c.compiled.Get(name)
	f, ok := tengo.ToFloat64(v.Object())
	if !ok {
		return 0, fmt.Errorf("%s is %s, want a number", name, v.ValueType())
	}
	return f, nil
}
