package gograph

import (
	"golang.org/x/exp/constraints"
)

// ============================================================
// Integer helpers
// ============================================================

// gcd keeps the sign conventions of the remainder loop it is built on:
// the result can be negative when an operand is.
func gcd[T constraints.Integer](m, n T) T {
	b, r := max(m, n), min(m, n)
	for r != 0 {
		b, r = r, b%r
	}
	return b
}

func lcm[T constraints.Integer](m, n T) T { return m / gcd(m, n) * n }

// ipow returns base^exp and false when the result overflows int.
func ipow(base, exp int) (int, bool) {
	result := 1
	for i := 0; i < exp; i++ {
		next := result * base
		if base != 0 && next/base != result {
			return 0, false
		}
		result = next
	}
	return result, true
}

type perfectPower struct{ base, exp int }

// asPower finds the smallest base b >= 2 with b^e == n for some e >= 2.
func asPower(n int) (perfectPower, bool) {
	for base := 2; base*base <= n; base++ {
		if n%base != 0 {
			continue
		}
		if base*base == n {
			return perfectPower{base, 2}, true
		}
		for exp := 3; ; exp++ {
			p, ok := ipow(base, exp)
			if !ok || p > n {
				break
			}
			if p == n {
				return perfectPower{base, exp}, true
			}
		}
	}
	return perfectPower{}, false
}
