package entity

// MillLineCount is the number of three-in-a-row lines on the board.
const MillLineCount = 16

var adjacency = [PositionCount][]Position{
	A7: {D7, A4},
	D7: {A7, G7, D6},
	G7: {D7, G4},
	G4: {G7, G1, F4},
	G1: {G4, D1},
	D1: {G1, A1, D2},
	A1: {D1, A4},
	A4: {A1, A7, B4},

	B6: {D6, B4},
	D6: {B6, F6, D7, D5},
	F6: {D6, F4},
	F4: {F6, F2, G4, E4},
	F2: {F4, D2},
	D2: {F2, B2, D1, D3},
	B2: {D2, B4},
	B4: {B2, B6, A4, C4},

	C5: {D5, C4},
	D5: {C5, E5, D6},
	E5: {D5, E4},
	E4: {E5, E3, F4},
	E3: {E4, D3},
	D3: {E3, C3, D2},
	C3: {D3, C4},
	C4: {C3, C5, B4},
}

var millLines = [MillLineCount][3]Position{
	// ring sides
	{A7, D7, G7}, {G7, G4, G1}, {G1, D1, A1}, {A1, A4, A7},
	{B6, D6, F6}, {F6, F4, F2}, {F2, D2, B2}, {B2, B4, B6},
	{C5, D5, E5}, {E5, E4, E3}, {E3, D3, C3}, {C3, C4, C5},
	// spokes
	{D7, D6, D5}, {G4, F4, E4}, {D1, D2, D3}, {A4, B4, C4},
}

var linesThrough = func() [PositionCount][]int {
	var lines [PositionCount][]int
	for i, line := range millLines {
		for _, p := range line {
			lines[p] = append(lines[p], i)
		}
	}
	return lines
}()

// Adjacent returns the neighbours of p. The slice is shared and must not be modified.
func Adjacent(p Position) []Position {
	return adjacency[p.mustBeValid()]
}

func IsAdjacent(a, b Position) bool {
	for _, n := range Adjacent(a) {
		if n == b {
			return true
		}
	}
	return false
}

func MillLines() [MillLineCount][3]Position {
	return millLines
}

// MillLine returns the three cells of line i.
func MillLine(i int) [3]Position {
	return millLines[i]
}

// LinesThrough returns the indices of the mill lines containing p.
func LinesThrough(p Position) []int {
	return linesThrough[p.mustBeValid()]
}
