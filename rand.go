package main

// Rand is a small random number generator with value semantics. Copying a
// Rand gives you a second generator that produces the same sequence as the
// original from that point on, independently. I want this because the World
// owns its own generator and I want to be able to copy a World in tests and
// have the copy behave exactly like the original.
// The algorithm is xorshift64* seeded through a splitmix64 step. I don't need
// cryptographic quality, I need speed, determinism and no pointers.
type Rand struct {
	state uint64
}

func NewRand(seed int64) (r Rand) {
	// Run the seed through a splitmix64 step so that small seeds like 0, 1, 2
	// still produce well-mixed, non-zero initial states. xorshift64* gets
	// stuck at zero if the state is ever zero.
	z := uint64(seed) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z = z ^ (z >> 31)
	if z == 0 {
		z = 0x9e3779b97f4a7c15
	}
	r.state = z
	return
}

func (r *Rand) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 0x2545f4914f6cdd1d
}

// RInt returns a random integer in the interval [min, max], inclusive on
// both ends. The modulo introduces a tiny bias for huge intervals, which is
// irrelevant for picking scene parameters.
func (r *Rand) RInt(min int64, max int64) int64 {
	if min > max {
		panic("RInt: min > max")
	}
	return min + int64(r.next()%uint64(max-min+1))
}

// RFloat returns a random float in the interval [min, max).
func (r *Rand) RFloat(min float64, max float64) float64 {
	// The top 53 bits of the generator output give a uniform value in [0, 1).
	unit := float64(r.next()>>11) / (1 << 53)
	return min + unit*(max-min)
}

// globalRand is a convenience generator for tests and throwaway tools. The
// World never uses it, the World has its own Rand.
var globalRand = NewRand(0)

func RSeed(seed int64) {
	globalRand = NewRand(seed)
}

func RInt(min int64, max int64) int64 {
	return globalRand.RInt(min, max)
}

func RFloat(min float64, max float64) float64 {
	return globalRand.RFloat(min, max)
}
