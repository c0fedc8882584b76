package raycast

// Remap linearly maps n from [start1, stop1] onto [start2, stop2]. It does not
// clamp.
func Remap(n, start1, stop1, start2, stop2 float64) float64 {
	return (n-start1)/(stop1-start1)*(stop2-start2) + start2
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
