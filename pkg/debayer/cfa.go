package debayer

import (
	"fmt"
	"strings"
)

// Channel identifies one of the three color planes of the output raster.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "unknown"
}

// CFA is the 2x2 color filter array pattern of the sensor. The name lists
// the filter colors of the top-left, top-right, bottom-left and bottom-right
// pixels of the tile, in that order. The numeric values are the pattern
// identifiers of the boundary contract.
type CFA uint8

const (
	BGGR CFA = iota
	GBRG
	GRBG
	RGGB
)

// channelTable[pattern][y&1][x&1]
var channelTable = [4][2][2]Channel{
	BGGR: {{Blue, Green}, {Green, Red}},
	GBRG: {{Green, Blue}, {Red, Green}},
	GRBG: {{Green, Red}, {Blue, Green}},
	RGGB: {{Red, Green}, {Green, Blue}},
}

// CFAFromID maps a boundary pattern identifier onto a CFA. Identifiers
// outside the four recognized patterns are a caller contract violation.
func CFAFromID(id uint32) (CFA, error) {
	if id > uint32(RGGB) {
		return 0, fmt.Errorf("cfa pattern id %d: %w", id, ErrGeneric)
	}
	return CFA(id), nil
}

// ParseCFA maps a pattern name like "rggb" onto a CFA. Case does not
// matter.
func ParseCFA(name string) (CFA, error) {
	switch strings.ToUpper(name) {
	case "BGGR":
		return BGGR, nil
	case "GBRG":
		return GBRG, nil
	case "GRBG":
		return GRBG, nil
	case "RGGB":
		return RGGB, nil
	}
	return 0, fmt.Errorf("cfa pattern %q: %w", name, ErrGeneric)
}

func (c CFA) valid() bool { return c <= RGGB }

func (c CFA) String() string {
	switch c {
	case BGGR:
		return "BGGR"
	case GBRG:
		return "GBRG"
	case GRBG:
		return "GRBG"
	case RGGB:
		return "RGGB"
	}
	return "unknown"
}

// ChannelAt returns the channel sampled at raw grid position (x, y).
// The pattern repeats with period 2 in both directions, so only the
// parity of the coordinates matters.
func (c CFA) ChannelAt(x, y int) Channel {
	return channelTable[c][y&1][x&1]
}

// Offset is a relative raw-grid position.
type Offset struct {
	DX, DY int
}

var (
	orthoOffsets     = []Offset{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
	diagOffsets      = []Offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	rowOffsets       = []Offset{{-1, 0}, {1, 0}}
	colOffsets       = []Offset{{0, -1}, {0, 1}}
	greenSelfOffsets = []Offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	colorSelfOffsets = []Offset{{0, -2}, {-2, 0}, {2, 0}, {0, 2}}
)

// NeighborOffsets returns the offsets of the nearest raw samples carrying
// channel ch, relative to (x, y). Green at a red or blue site lives on the
// orthogonal cross, red or blue at a green site on one axis, and the
// opposite color on the diagonals. The returned slice is shared; callers
// must not modify it.
func (c CFA) NeighborOffsets(x, y int, ch Channel) []Offset {
	own := c.ChannelAt(x, y)
	switch {
	case ch == own:
		if own == Green {
			return greenSelfOffsets
		}
		return colorSelfOffsets
	case own == Green:
		if c.ChannelAt(x+1, y) == ch {
			return rowOffsets
		}
		return colOffsets
	case ch == Green:
		return orthoOffsets
	default:
		return diagOffsets
	}
}
