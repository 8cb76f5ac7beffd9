package world

// BlockTypeRef identifies a block type in a Catalog. The zero value is air.
type BlockTypeRef uint16

// Air marks a cell with no block.
const Air BlockTypeRef = 0

// Direction is the placement orientation of a block.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// BlockState is the content of one voxel cell.
type BlockState struct {
	Block     BlockTypeRef
	Direction Direction
	// Damage selects a visual variant or breakage stage.
	Damage      uint8
	Transparent bool
}

// AirState is an empty cell.
var AirState = BlockState{Block: Air, Direction: North}

// Solid returns an opaque, north-facing, undamaged state of ref.
func Solid(ref BlockTypeRef) BlockState {
	return BlockState{Block: ref, Direction: North}
}

// IsAir reports whether the cell holds no block. Air contributes no geometry
// whatever its other fields say.
func (s BlockState) IsAir() bool {
	return s.Block == Air
}
