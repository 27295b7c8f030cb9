package domain

// Cell is the state of a single intersection.
type Cell int

const (
	Empty Cell = 0
	Black Cell = 1
	White Cell = 2
)

// Side is the player to move.
type Side int

const (
	SideBlack Side = 1
	SideWhite Side = 2
)

const (
	Size    = 15
	Center  = Size / 2
	ToWin   = 5
	Columns = "ABCDEFGHIJKLMNO"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideBlack {
		return SideWhite
	}
	return SideBlack
}

// Cell returns the stone this side places.
func (s Side) Cell() Cell {
	return Cell(s)
}

func (s Side) String() string {
	switch s {
	case SideBlack:
		return "black"
	case SideWhite:
		return "white"
	default:
		return "unknown"
	}
}

func (s Side) Valid() bool {
	return s == SideBlack || s == SideWhite
}

// CriticalReason tags which priority tier forced a move.
type CriticalReason string

const (
	ReasonNone           CriticalReason = ""
	ReasonWin            CriticalReason = "WIN"
	ReasonBlockWin       CriticalReason = "BLOCK_WIN"
	ReasonCreateOpenFour CriticalReason = "CREATE_OPEN_FOUR"
	ReasonBlockOpenFour  CriticalReason = "BLOCK_OPEN_FOUR"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNoLegalMove  Error = "no legal move: board is full"
	ErrInvalidBoard Error = "board must be 15x15 with cells in {0,1,2}"
	ErrInvalidSide  Error = "side must be black or white"
	ErrInvalidMove  Error = "invalid move"
)
