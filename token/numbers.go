package token

// IsNumeric reports whether v is, in its entirety, a numeric token:
// an optional sign, digits, an optional fraction, and an optional
// exponent. It accepts leading zeros since it classifies scalar text
// rather than enforcing a wire grammar.
func IsNumeric(v string) bool {
	d := []byte(v)
	if len(d) > 0 && (d[0] == '-' || d[0] == '+') {
		d = d[1:]
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits+f+e == len(d)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
