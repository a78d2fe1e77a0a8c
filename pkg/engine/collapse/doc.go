// Package collapse implements a Wave Function Collapse engine over a
// rectangular grid of tiles with four sides each.
//
// Every cell of a Map holds the tiles it may still become. Narrowing a cell
// filters its candidates against the side sets its four neighbours expose
// and, whenever the cell's own side sets shrink, re-filters the affected
// neighbours recursively. Every cell touched during one such call is
// snapshotted on first touch, so a failed call can be reverted exactly with
// ResetOldCellStates.
//
// FullCollapse drives the search: it repeatedly collapses the uncollapsed
// cell with the fewest candidates, retries the last cell that failed before
// anything else, and on a dead end reverts the most recent successful
// decision.
//
// Tiles are plain comparable values. Two tiles are the same tile when all of
// their fields are equal.
package collapse
