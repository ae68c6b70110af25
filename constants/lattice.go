package constants

// HeightFactor is sqrt(3)/2, the height of an equilateral triangle per unit side
const HeightFactor float32 = 0.866025404

// SideLengthStep is the side length change per Up/Down step
const SideLengthStep = 2

// Mirror Variant Side Bounds
const (
	// MirrorMinSideLength is the smallest side length of the mirror variant
	MirrorMinSideLength = 5

	// MirrorMaxSideLength is the largest side length of the mirror variant
	MirrorMaxSideLength = 63

	// MirrorInitialSideLength is the side length at startup
	MirrorInitialSideLength = MirrorMinSideLength
)

// Lattice Variant Side Bounds
const (
	// LatticeMinSideLength is the smallest side length of the lattice variant
	LatticeMinSideLength = 10

	// LatticeMaxSideLength is the upper bound of the lattice variant
	// Steps of 2 from an even start stop at 62
	LatticeMaxSideLength = 63

	// LatticeInitialSideLength is the side length at startup
	LatticeInitialSideLength = 20
)

// Sampler Constants
const (
	// MaxPixels is the capacity of the sampled pixel stamp
	MaxPixels = 200

	// InitialRandomPixels is the number of sampling trials at startup
	InitialRandomPixels = 0
)

// CenterDiscRadius is the radius of the disc marking a triangle centroid
const CenterDiscRadius = 1
