// Package leewave finds shortest 4-connected routes on 2D grids with the
// Lee wavefront algorithm.
//
// 🚀 What is leewave?
//
//	A small, dependency-light toolkit made of:
//		• grid      — read-only View contract, borrowed Rows, owned Dense + Window
//		• wavefront — breadth-first distance labelling, backtrace, FindPath facade
//		• cmd/leeroute — route on .hcl map files from the terminal
//
// ✨ Why leewave?
//
//   - Exact outcome classes – a path, "no path", or a fault; never conflated
//   - Deterministic – fixed east/south/west/north probe order breaks ties
//   - Generic – any comparable cell type: int codes, runes, bytes, strings
//   - Hooks – OnDiscover / OnRound for tracing, limits and cancellation
//
// Quick ASCII example:
//
//	S . # . .
//	* . # . .
//	* . # . .
//	* . # . .
//	* * * * D
//
// is the 8-hop route through the only gap in a wall.
//
//	go get github.com/katalvlaran/leewave
package leewave
