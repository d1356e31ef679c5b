// Package gridastar provides an interactive A* pathfinding engine over a
// bounded, sparsely stored 2D grid.
//
// It exposes two main entry points:
//
//   - Pathfinder.FindPath: run the search to completion and get a Result.
//   - Pathfinder.Begin: obtain a Search and expand one node per Step to drive
//     UIs or debugging tools.
//
// Cells are materialised lazily the first time they are referenced, so the
// grid only stores endpoints, blocked cells and the cells the search touched.
// Movement is 4-directional, or 8-directional with corner cutting enabled,
// and costs are Euclidean distances between cell coordinates.
package gridastar
