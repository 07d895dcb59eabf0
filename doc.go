// Package hillclimb finds the fewest-step routes across a height map where
// each step may climb at most one unit of elevation.
//
// Under the hood, everything is organized under two library packages and
// a command:
//
//	heightmap/       immutable Grid of elevations, parser, neighbor rules
//	climb/           breadth-first Engine: Search, SearchFrom, BestPath, Trace
//	cmd/hillclimb/   CLI reading a map file and printing both answers
//
// Quick ASCII example:
//
//	S a b q p o n m
//	a b c r y x x l
//	a c c s z E x k
//	a c c t u v w j
//	a b d e f g h i
//
// From S the shortest route to E takes 31 steps; from the best 'a' cell, 29.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
