package common

const (
	BaseWidth  = 832
	BaseHeight = 640

	// CellSize is the pixel size of one grid unit.
	CellSize = 64
)
