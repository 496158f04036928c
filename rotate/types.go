package rotate

// Pos is a (Row, Col) coordinate inside a grid.
type Pos struct {
	Row, Col int
}

// Layers returns the number of concentric layers of an n×n grid, ⌈n/2⌉.
// Layer 0 is the outer perimeter. For odd n the last layer is the single
// centre cell, which every rotation leaves in place. Returns 0 for n <= 0.
func Layers(n int) int {
	if n <= 0 {
		return 0
	}

	return (n + 1) / 2
}
