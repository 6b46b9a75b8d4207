package sudoku

// The 81 cells are traversed three ways: nine rows, nine columns and nine
// 3x3 boxes. Each table below holds, per group, the nine row-major cell
// indices of that group. Boxes are numbered row-major over box-rows and
// box-columns, so box 0 is the top-left 3x3 block and box 8 the bottom-right.
var (
	rowGroups [Size][Size]int
	colGroups [Size][Size]int
	boxGroups [Size][Size]int

	groupings = [3]*[Size][Size]int{&rowGroups, &colGroups, &boxGroups}
)

func init() {
	for g := range Size {
		for i := range Size {
			rowGroups[g][i] = g*Size + i
			colGroups[g][i] = i*Size + g
			boxGroups[g][i] = (3*(g/3)+i/3)*Size + 3*(g%3) + i%3
		}
	}
}
