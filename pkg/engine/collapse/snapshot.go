package collapse

// CellState is the saved state of one cell
type CellState struct {
	Collapsed     bool
	PossibleTiles []Tile
}

// OldCellStates maps y to x to the state a cell had before it was first
// touched. It is what a failed or unwanted operation is reverted with.
type OldCellStates map[int]map[int]CellState

// record saves the state of cell unless it was already saved. The first
// record wins so the oldest state is kept.
func (o OldCellStates) record(cell *MapCell) {
	row, ok := o[cell.Y]
	if !ok {
		row = make(map[int]CellState)
		o[cell.Y] = row
	}
	if _, ok := row[cell.X]; ok {
		return
	}
	row[cell.X] = CellState{Collapsed: cell.Collapsed, PossibleTiles: cell.PossibleTiles}
}

// Get returns the saved state of the cell at (x, y)
func (o OldCellStates) Get(x, y int) (CellState, bool) {
	state, ok := o[y][x]
	return state, ok
}

// Len returns the number of saved cells
func (o OldCellStates) Len() int {
	n := 0
	for _, row := range o {
		n += len(row)
	}
	return n
}

// Snapshot saves the state of every cell of m
func Snapshot(m *Map) OldCellStates {
	old := make(OldCellStates, m.Height)
	m.ForEachCell(func(_, _ int, cell *MapCell) {
		old.record(cell)
	})
	return old
}

// ResetOldCellStates restores every saved cell. Candidates and the collapsed
// flag are restored as saved and the side sets are derived again from the
// restored candidates.
func ResetOldCellStates(m *Map, old OldCellStates) {
	for y, row := range old {
		for x, state := range row {
			cell := m.Cell(x, y)
			if cell == nil {
				continue
			}
			cell.setPossibleTiles(state.PossibleTiles)
			cell.Collapsed = state.Collapsed
		}
	}
}
