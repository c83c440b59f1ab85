// POSIX drand48 family of pseudo-random number generators
// Derived from the linear congruential formula in IEEE Std 1003.1:
// X(n+1) = (a*X(n) + c) mod 2^48, with a = 0x5DEECE66D and c = 0xB.
//
// Sequences are bit-exact with the C library functions of the same names.
// Nothing here is cryptographically secure.

package rand48

const (
	defaultA = 0x5DEECE66D
	defaultC = 0xB

	stateMask = 1<<48 - 1

	// State before any call to srand48/seed48/lcong48, per POSIX.
	// glibc deviates and starts from zero; macOS and the BSDs use this.
	defaultX = 0x1234ABCD330E

	// srand48 forces the low 16 bits of the state to this value.
	seedLow = 0x330E
)

// Source is the caller-owned state of one generator: 48 bits of X plus the
// multiplier and addend, which lcong48 can replace. The zero Source is not
// meaningful; use New or Seed48. A Source is not safe for concurrent use.
type Source struct {
	x uint64
	a uint64
	c uint16
}

// New returns a Source initialized as if by srand48(seedval).
func New(seedval int64) *Source {
	s := &Source{}
	s.Srand48(seedval)
	return s
}

// Unseeded returns a Source in the state a process has before any seeding
// call.
func Unseeded() *Source {
	return &Source{x: defaultX, a: defaultA, c: defaultC}
}

// Srand48 seeds the generator: the high 32 bits of the state come from the
// low 32 bits of seedval, the low 16 bits are set to 0x330E. It also
// restores the default multiplier and addend, undoing any prior Lcong48.
func (s *Source) Srand48(seedval int64) {
	s.x = uint64(uint32(seedval))<<16 | seedLow
	s.a = defaultA
	s.c = defaultC
}

// Seed48 installs a full 48-bit state from three 16-bit words, xsubi[0]
// least significant, and returns the previous state in the same form.
// Like Srand48, it restores the default multiplier and addend.
func (s *Source) Seed48(xsubi [3]uint16) [3]uint16 {
	prev := stateWords(s.x)
	s.x = stateFromWords(xsubi)
	s.a = defaultA
	s.c = defaultC
	return prev
}

// Lcong48 installs state (param[0:3]), multiplier (param[3:6]), and addend
// (param[6]), each least-significant-word first.
func (s *Source) Lcong48(param [7]uint16) {
	s.x = stateFromWords([3]uint16{param[0], param[1], param[2]})
	s.a = stateFromWords([3]uint16{param[3], param[4], param[5]})
	s.c = param[6]
}

// next advances the state and returns all 48 bits of it.
func (s *Source) next() uint64 {
	s.x = (s.a*s.x + uint64(s.c)) & stateMask
	return s.x
}

// Lrand48 returns the next value, uniform over [0, 2^31).
func (s *Source) Lrand48() int32 {
	return int32(s.next() >> 17)
}

// Mrand48 returns the next value, uniform over [-2^31, 2^31).
func (s *Source) Mrand48() int32 {
	return int32(uint32(s.next() >> 16))
}

// Drand48 returns the next value, uniform over [0.0, 1.0).
func (s *Source) Drand48() float64 {
	return float64(s.next()) / (1 << 48)
}

// Int63 composes two steps of the generator into 63 bits, high bits first,
// so that Source satisfies math/rand.Source and can drive a *rand.Rand.
func (s *Source) Int63() int64 {
	hi := s.next() >> 22 // 26 bits
	lo := s.next() >> 11 // 37 bits
	return int64(hi<<37 | lo)
}

// Seed reseeds as if by Srand48, satisfying math/rand.Source.
func (s *Source) Seed(seed int64) {
	s.Srand48(seed)
}

func stateWords(x uint64) [3]uint16 {
	return [3]uint16{uint16(x), uint16(x >> 16), uint16(x >> 32)}
}

func stateFromWords(w [3]uint16) uint64 {
	return uint64(w[2])<<32 | uint64(w[1])<<16 | uint64(w[0])
}
