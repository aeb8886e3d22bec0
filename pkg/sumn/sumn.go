// Package sumn provides three equivalent implementations of summing all
// integers between 1 and n inclusive. For negative n the sum runs from n to
// -1, so SumTo(-5) == -15.
package sumn

// SumToClosedForm uses the Gauss formula.
func SumToClosedForm(n int) int {
	if n >= 0 {
		return n * (n + 1) / 2
	}
	return -(-n * (-n + 1) / 2)
}

// SumToIterative accumulates term by term.
func SumToIterative(n int) int {
	sum := 0
	if n >= 0 {
		for i := 1; i <= n; i++ {
			sum += i
		}
		return sum
	}
	for i := n; i < 0; i++ {
		sum += i
	}
	return sum
}

// SumToRecursive walks n toward zero one step at a time.
func SumToRecursive(n int) int {
	if n == 0 {
		return 0
	}
	if n > 0 {
		return n + SumToRecursive(n-1)
	}
	return n + SumToRecursive(n+1)
}
