package validation

const cpfLength = 11

// ValidateCPF reports whether cpf is a well-formed Brazilian taxpayer ID:
// eleven digits, not all equal, with both modulo-11 check digits correct.
// Punctuated input ("958.187.055-52") is rejected.
func ValidateCPF(cpf string) bool {
	digits, ok := parseDigits(cpf)
	if !ok || allEqual(digits) {
		return false
	}
	if checkDigit(digits[:9]) != digits[9] {
		return false
	}
	return checkDigit(digits[:10]) == digits[10]
}

func parseDigits(s string) ([]int, bool) {
	if len(s) != cpfLength {
		return nil, false
	}
	digits := make([]int, cpfLength)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// checkDigit weights the digits from len+1 down to 2.
func checkDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for i, d := range digits {
		sum += d * (weight - i)
	}
	rem := sum * 10 % 11
	if rem == 10 {
		return 0
	}
	return rem
}
