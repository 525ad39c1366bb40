package engine

// shouldLogIteration throttles progress records on a fixed schedule: every
// iteration up to 1000, then every 100th up to 10000, then every 1000th up
// to 100000, then every 10000th up to 1000000, then every 100000th beyond
// that.
func shouldLogIteration(i int) bool {
	switch {
	case i <= 1000:
		return true
	case i < 10000:
		return i%100 == 0
	case i < 100000:
		return i%1000 == 0
	case i < 1000000:
		return i%10000 == 0
	default:
		return i%100000 == 0
	}
}
