package world

// Direction represents one of the four screen directions
type Direction int

// Direction constants
const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four screen directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Right:
		return Left
	case Left:
		return Right
	default:
		return d
	}
}

// Delta returns the unit step for this direction in screen space (y grows downward)
func (d Direction) Delta() Vec2 {
	switch d {
	case Up:
		return Vec2{Y: -1}
	case Right:
		return Vec2{X: 1}
	case Down:
		return Vec2{Y: 1}
	case Left:
		return Vec2{X: -1}
	default:
		return Vec2{}
	}
}

// Velocity returns a velocity of the given magnitude along this direction
func (d Direction) Velocity(speed float64) Vec2 {
	return d.Delta().Scale(speed)
}

// Vertical reports whether the direction moves along the y axis
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// DirectionOf returns the direction of the single non-zero axis of v.
// ok is false when v is zero or moves along both axes.
func DirectionOf(v Vec2) (d Direction, ok bool) {
	switch {
	case v.X == 0 && v.Y < 0:
		return Up, true
	case v.X == 0 && v.Y > 0:
		return Down, true
	case v.Y == 0 && v.X > 0:
		return Right, true
	case v.Y == 0 && v.X < 0:
		return Left, true
	default:
		return Up, false
	}
}
