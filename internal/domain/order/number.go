package order

import (
	"errors"
	"strings"
)

var ErrInvalidOrderNumber = errors.New("invalid order number")

// TimestampDigits is the fixed width of the millisecond timestamp inside the
// raw digit string; the per-millisecond counter follows it, so raw strings
// stay injective even though the counter part has no fixed width.
const TimestampDigits = 13

const numberGroupWidth = 4

// Parts is a decoded order number.
type Parts struct {
	Tenant     string
	CheckDigit int
	Raw        string
}

// ComposeNumber builds the human-facing order number from the tenant code
// and the raw timestamp+counter digits: a Luhn mod-10 check digit is
// computed over the raw digits, the raw digits are obfuscated with a
// format-preserving transform keyed by that digit, and the result is
// regrouped into dashed segments behind the tenant prefix.
func ComposeNumber(tenant, raw string) (string, error) {
	if tenant == "" || !isDigits(raw) || len(raw) <= TimestampDigits {
		return "", ErrInvalidOrderNumber
	}

	check := luhnCheckDigit(raw)
	body := string(rune('0'+check)) + obfuscate(raw, check)

	var b strings.Builder
	b.WriteString(tenant)
	for i := 0; i < len(body); i += numberGroupWidth {
		end := i + numberGroupWidth
		if end > len(body) {
			end = len(body)
		}
		b.WriteByte('-')
		b.WriteString(body[i:end])
	}
	return b.String(), nil
}

// ParseNumber decodes a composed order number back to its parts, verifying
// the embedded check digit against the de-obfuscated raw digits.
func ParseNumber(number string) (Parts, error) {
	segments := strings.Split(number, "-")
	if len(segments) < 2 || segments[0] == "" {
		return Parts{}, ErrInvalidOrderNumber
	}

	body := strings.Join(segments[1:], "")
	if !isDigits(body) || len(body) <= TimestampDigits+1 {
		return Parts{}, ErrInvalidOrderNumber
	}

	check := int(body[0] - '0')
	raw := deobfuscate(body[1:], check)
	if luhnCheckDigit(raw) != check {
		return Parts{}, ErrInvalidOrderNumber
	}

	return Parts{Tenant: segments[0], CheckDigit: check, Raw: raw}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// luhnCheckDigit computes the mod-10 check digit that would make
// digits+check pass a Luhn validation.
func luhnCheckDigit(digits string) int {
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// obfuscate applies a positional digit shift keyed by the check digit.
// Deterministic, invertible, and format preserving; adjacent timestamps do
// not come out looking sequential because the key changes with the check
// digit.
func obfuscate(digits string, key int) string {
	out := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		d := int(digits[i]-'0') + key + i
		out[i] = byte('0' + d%10)
	}
	return string(out)
}

func deobfuscate(digits string, key int) string {
	out := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		d := int(digits[i]-'0') - (key+i)%10
		if d < 0 {
			d += 10
		}
		out[i] = byte('0' + d)
	}
	return string(out)
}
