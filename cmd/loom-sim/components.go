package main

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Lifetime struct {
	Remaining float64
}

// SimClock accumulates simulated time across ticks.
type SimClock struct {
	Elapsed float64
	Ticks   uint64
}

// Bounds is the rectangular area particles bounce inside.
type Bounds struct {
	X, Y float64
}
