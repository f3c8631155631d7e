package bigint

import "strconv"

const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// validRadix reports whether base is one of the four radices this package's
// textual I/O supports: 2, 8, 10, 16. Per spec.md §4.6, any other base is
// invalid, not merely unprefixed.
func validRadix(base int) bool {
	switch base {
	case 2, 8, 10, 16:
		return true
	default:
		return false
	}
}

// digitValue returns the value of digit character c in the given base, and
// whether c is a valid digit in that base.
func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// Parse parses s as a signed integer in the given base (2, 8, 10 or 16; any
// other non-zero value reports ErrInvalid) and returns the result. base ==
// 0 means auto-detect from a 0x/0o/0b prefix or an unprefixed leading "0",
// defaulting to decimal. Decimal input may use scientific notation
// ("1.5e3"); Parse fails if any fractional digits are left unconsumed by
// the exponent — use ParseFraction to retrieve them instead of erroring.
//
// Grammar (base == 0 or base == 10):
//
//	number     = [ sign ] mantissa [ exponent ]
//	sign       = "+" | "-"
//	mantissa   = digits [ "." { digit } ] | "." digits
//	exponent   = ( "e" | "E" ) [ "+" ] digits
//	digits     = digit { digit }
//
// For any other base, number = [ sign ] digits, with no fraction or
// exponent.
func Parse(s string, base int) (*BigInt, error) {
	z, residue, err := ParseFraction(s, base)
	if err != nil {
		return nil, err
	}
	if residue != "" {
		return nil, wrapf(ErrInvalid, "unconsumed fractional digits %q", residue)
	}
	return z, nil
}

// ParseFraction is Parse, but instead of failing when a decimal input's
// exponent doesn't cover every fractional digit, it returns the leftover
// suffix of fractional digits as residue (a substring of s), mirroring
// bigint_strtobif's fraction out-parameter, which points into the original
// input buffer rather than allocating.
func ParseFraction(s string, base int) (result *BigInt, residue string, err error) {
	if len(s) == 0 {
		return nil, "", wrap(ErrInvalid, "empty string")
	}
	i := 0
	neg := false
	if s[i] == '+' || s[i] == '-' {
		neg = s[i] == '-'
		i++
	}
	if base == 0 {
		base = 10
		if i+1 < len(s) && s[i] == '0' {
			switch s[i+1] {
			case 'x', 'X':
				base, i = 16, i+2
			case 'o', 'O':
				base, i = 8, i+2
			case 'b', 'B':
				base, i = 2, i+2
			default:
				// A bare leading 0 followed directly by a digit (no '.')
				// is an unprefixed octal literal, per bigint_strtobif.
				if s[i+1] >= '0' && s[i+1] <= '9' {
					base, i = 8, i+1
				}
			}
		}
	} else if !validRadix(base) {
		return nil, "", wrap(ErrInvalid, "radix out of range")
	}

	result = New()
	baseBI := NewFromUint64(uint64(base))
	sawDigit := false
	j := i
	for j < len(s) {
		v, ok := digitValue(s[j], base)
		if !ok {
			break
		}
		sawDigit = true
		result.Mul(result, baseBI)
		result.Add(result, cachedOrNew(uint(v)))
		j++
	}

	fracStart := -1
	if base == 10 && j < len(s) && s[j] == '.' {
		fracStart = j + 1
		j++
		for j < len(s) {
			if _, ok := digitValue(s[j], 10); !ok {
				break
			}
			sawDigit = true
			j++
		}
	}
	if !sawDigit {
		return nil, "", wrap(ErrInvalid, "no digits")
	}
	fracStr := ""
	if fracStart >= 0 {
		fracEnd := j
		fracStr = s[fracStart:fracEnd]
	}

	exp := 0
	if base == 10 && j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := j + 1
		expNeg := false
		if k < len(s) && (s[k] == '+' || s[k] == '-') {
			expNeg = s[k] == '-'
			k++
		}
		if expNeg {
			return nil, "", wrap(ErrInvalid, "negative exponent")
		}
		start := k
		for k < len(s) {
			if _, ok := digitValue(s[k], 10); !ok {
				break
			}
			k++
		}
		if k == start {
			return nil, "", wrap(ErrInvalid, "malformed exponent")
		}
		v, perr := strconv.Atoi(s[start:k])
		if perr != nil {
			return nil, "", wrap(ErrInvalid, "malformed exponent")
		}
		exp = v
		j = k
	}

	if j != len(s) {
		return nil, "", wrap(ErrInvalid, "invalid trailing characters")
	}

	consume := exp
	if consume > len(fracStr) {
		consume = len(fracStr)
	}
	if consume < 0 {
		consume = 0
	}
	for k := 0; k < consume; k++ {
		v, _ := digitValue(fracStr[k], 10)
		result.Mul(result, cachedOrNew(10))
		result.Add(result, cachedOrNew(uint(v)))
	}
	residue = fracStr[consume:]

	if extra := exp - consume; extra > 0 {
		p, _ := New().Pow(cachedOrNew(10), NewFromInt64(int64(extra)))
		result.Mul(result, p)
	}

	result.neg = neg && !result.IsZero()
	return result, residue, nil
}

// Text returns the string representation of z in the given base (2, 8, 10
// or 16; any other value reports ErrInvalid). Bases 2, 8 and 16 are written
// with a 0b/0o/0x prefix; base 10 has none.
func (z *BigInt) Text(base int) (string, error) {
	if !validRadix(base) {
		return "", wrap(ErrInvalid, "radix out of range")
	}
	sign := ""
	if z.neg {
		sign = "-"
	}
	prefix := ""
	switch base {
	case 2:
		prefix = "0b"
	case 8:
		prefix = "0o"
	case 16:
		prefix = "0x"
	}
	if z.IsZero() {
		return prefix + "0", nil
	}

	m := z.Clone()
	m.neg = false
	baseBI := NewFromUint64(uint64(base))
	var r BigInt
	rev := make([]byte, 0, len(z.digits)*wordBits/2+1)
	for !m.IsZero() {
		m.QuoRem(&r, m, baseBI)
		d, _ := r.Uint64()
		rev = append(rev, digitAlphabet[d])
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return sign + prefix + string(rev), nil
}

// String returns the base-10 representation of z, implementing fmt.Stringer.
func (z *BigInt) String() string {
	s, _ := z.Text(10)
	return s
}

// PutText writes z's base representation, as produced by Text, into buf and
// returns the number of bytes written. It reports ErrRange if buf is too
// small, mirroring bigint_snbprint's buffer-size check.
func (z *BigInt) PutText(buf []byte, base int) (int, error) {
	s, err := z.Text(base)
	if err != nil {
		return 0, err
	}
	if len(s) > len(buf) {
		return 0, wrap(ErrRange, "buffer too small")
	}
	return copy(buf, s), nil
}
