package component

// GameTag marks the session entity that carries board, score and clock.
type GameTag struct{}

var GameTagComponent = NewComponent[GameTag]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type TileTag struct{}

var TileTagComponent = NewComponent[TileTag]()
