package util

// IsPrime reports whether n is prime by trial division up to sqrt(n).
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n int) int {
	for {
		n++
		if IsPrime(n) {
			return n
		}
	}
}
