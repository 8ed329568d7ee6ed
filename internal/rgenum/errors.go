package rgenum

import "errors"

// MaxTimesDivided bounds how many times a single locus may be subdivided
// before the engine refuses to splice it further.
const MaxTimesDivided = 256

// MaxRootChromosomes bounds the number of root (wild-type) chromosomes. The
// reference implementation derives this cap from its single-character
// base-65 identity encoding; this port keeps the cap as a pre-flight
// validation of n_chrs even though its structural identity keys (see
// Segment.IdentityKey) no longer require it, preserving the fatal
// condition's observable behavior per the spec's Open Question resolution.
const MaxRootChromosomes = 61

var (
	// ErrEmptyChromosome signals an internal invariant violation: a
	// chromosome was about to be left with zero segments instead of being
	// dropped from the genome.
	ErrEmptyChromosome = errors.New("rgenum: chromosome has no segments")

	// ErrTimesDividedExceeded signals that a splice would divide a locus
	// more than MaxTimesDivided times.
	ErrTimesDividedExceeded = errors.New("rgenum: times_divided exceeds cap")

	// ErrTooManyRootChromosomes signals n_chrs exceeds MaxRootChromosomes.
	ErrTooManyRootChromosomes = errors.New("rgenum: root chromosome count exceeds cap")

	// ErrMissingGenomeSeg signals an internal invariant violation: a
	// segment identity used in a chromosome has no representative in
	// Genome.GenomeSegs.
	ErrMissingGenomeSeg = errors.New("rgenum: segment identity missing from genome_segs")

	// ErrInvalidRange signals an internal invariant violation: a
	// from/to range passed to a structural primitive is out of bounds.
	ErrInvalidRange = errors.New("rgenum: invalid segment range")
)
