package entity

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
	"github.com/milk9111/cakechase/prefabs"
)

// tileSink lowers tiles so that entities standing on a cell sit on top.
const tileSink = 0.2

// NewBoard generates the board with random cell heights, attaches it to the
// session entity and spawns one tile per cell.
func NewBoard(w *ecs.World, session ecs.Entity, spec prefabs.BoardSpec, rng *rand.Rand) (*component.Board, error) {
	jitter := spec.HeightJitter
	board := component.NewBoard(spec.SizeI, spec.SizeJ, func(i, j int) float64 {
		if jitter == 0 || rng == nil {
			return 0
		}
		return (rng.Float64()*2 - 1) * jitter
	})
	if err := ecs.Add(w, session, component.BoardComponent.Kind(), board); err != nil {
		return nil, fmt.Errorf("board: add board: %w", err)
	}

	for j, row := range board.Cells {
		for i, cell := range row {
			tile := ecs.CreateEntity(w)
			if err := ecs.Add(w, tile, component.TileTagComponent.Kind(), &component.TileTag{}); err != nil {
				return nil, fmt.Errorf("board: add tile tag: %w", err)
			}
			t := component.NewTransform(float32(i), float32(cell.Height-tileSink), float32(j))
			if err := ecs.Add(w, tile, component.TransformComponent.Kind(), &t); err != nil {
				return nil, fmt.Errorf("board: add tile transform: %w", err)
			}
			if err := ecs.Add(w, tile, component.ModelComponent.Kind(), &component.Model{Kind: component.ModelTile}); err != nil {
				return nil, fmt.Errorf("board: add tile model: %w", err)
			}
		}
	}
	return board, nil
}
