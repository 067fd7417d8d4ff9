package geom

import "math/rand"

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Right
	Left
)

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

// Turned returns one of the two directions orthogonal to d, chosen by a
// fair coin flip. A turn never reverses into the opposite direction.
func (d Direction) Turned(rng *rand.Rand) Direction {
	heads := rng.Intn(2) == 0

	switch d {
	case Up, Down:
		if heads {
			return Right
		}
		return Left
	default:
		if heads {
			return Up
		}
		return Down
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return "unknown"
}
