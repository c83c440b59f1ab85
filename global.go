package rand48

// Package-level functions mirror the C library surface: one process-wide
// generator behind all of them. Like the platform state they stand in for,
// they are unsynchronized; concurrent callers must serialize access or use
// their own Source.
var global = Unseeded()

// Srand48 seeds the process-wide generator.
func Srand48(seedval int64) {
	global.Srand48(seedval)
}

// Lrand48 draws from the process-wide generator, uniform over [0, 2^31).
func Lrand48() int64 {
	return int64(global.Lrand48())
}

// Mrand48 draws from the process-wide generator, uniform over [-2^31, 2^31).
func Mrand48() int64 {
	return int64(global.Mrand48())
}

// Drand48 draws from the process-wide generator, uniform over [0.0, 1.0).
func Drand48() float64 {
	return global.Drand48()
}

// Seed48 installs a 48-bit state on the process-wide generator and returns
// the previous one.
func Seed48(xsubi [3]uint16) [3]uint16 {
	return global.Seed48(xsubi)
}

// Lcong48 installs state, multiplier, and addend on the process-wide
// generator.
func Lcong48(param [7]uint16) {
	global.Lcong48(param)
}

// The nrand48/erand48/jrand48 variants keep their state in a caller-owned
// array of three 16-bit words, xsubi[0] least significant, and always use
// the default multiplier and addend.

// Nrand48 advances xsubi and returns a value uniform over [0, 2^31).
func Nrand48(xsubi *[3]uint16) int32 {
	return int32(advance(xsubi) >> 17)
}

// Jrand48 advances xsubi and returns a value uniform over [-2^31, 2^31).
func Jrand48(xsubi *[3]uint16) int32 {
	return int32(uint32(advance(xsubi) >> 16))
}

// Erand48 advances xsubi and returns a value uniform over [0.0, 1.0).
func Erand48(xsubi *[3]uint16) float64 {
	return float64(advance(xsubi)) / (1 << 48)
}

func advance(xsubi *[3]uint16) uint64 {
	x := (defaultA*stateFromWords(*xsubi) + defaultC) & stateMask
	*xsubi = stateWords(x)
	return x
}
