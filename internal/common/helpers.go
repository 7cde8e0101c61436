package common

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// TokenDecimals is the base-unit scale of the Mento stable tokens (wei-style)
	TokenDecimals = 18
	// DisplayDecimals is the default number of fractional digits shown to users
	DisplayDecimals = 2
)

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// FormatTokenAmount converts a base-unit amount string to a human readable
// decimal string with exactly displayDecimals fractional digits, without float
// precision loss. Example: FormatTokenAmount("50000000000000000000", 18, 2) = "50.00".
// Non-numeric input returns "0".
func FormatTokenAmount(amount string, decimals, displayDecimals int) string {
	amount = strings.TrimSpace(amount)
	negative := strings.HasPrefix(amount, "-")
	digits := strings.TrimPrefix(amount, "-")
	if digits == "" || !isDigits(digits) || decimals < 0 || displayDecimals < 0 {
		return "0"
	}

	whole, frac := splitAtDecimals(digits, decimals)
	whole, frac = roundHalfUp(whole, frac, displayDecimals)

	out := whole
	if displayDecimals > 0 {
		out += "." + frac
	}
	if negative && strings.Trim(out, "0.") != "" {
		out = "-" + out
	}
	return out
}

// FormatCOP formats a COP amount with thousands separators and no fractional
// digits. Example: FormatCOP(50000) = "$50.000 COP". NaN/Inf returns "$0 COP".
func FormatCOP(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$0 COP"
	}
	rounded := int64(math.Round(math.Abs(amount)))
	grouped := groupThousands(strconv.FormatInt(rounded, 10))
	if amount < 0 && rounded != 0 {
		return "-$" + grouped + " COP"
	}
	return "$" + grouped + " COP"
}

// ShortenAddress shortens an address for display: "0x742d...bEb0".
// Addresses shorter than 10 characters are returned unchanged.
func ShortenAddress(address string) string {
	const chars = 4
	if len(address) < chars*2+2 {
		return address
	}
	return address[:chars+2] + "..." + address[len(address)-chars:]
}

// CopToTokenUnits converts a COP amount to token base units (wei).
// NaN/Inf returns "0".
func CopToTokenUnits(amount float64, decimals int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || decimals < 0 {
		return "0"
	}
	units := amount * math.Pow(10, float64(decimals))
	return strconv.FormatFloat(math.Round(units), 'f', -1, 64)
}

// TokenUnitsToCOP converts token base units (wei) to a COP amount.
// Non-numeric input returns 0.
func TokenUnitsToCOP(units string, decimals int) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(units), 64)
	if err != nil || math.IsNaN(n) || decimals < 0 {
		return 0
	}
	return n / math.Pow(10, float64(decimals))
}

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}
var longMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

// FormatDateTime renders a timestamp in es-CO style: "2 ene 2025, 14:30"
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%d %s %d, %02d:%02d", t.Day(), shortMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatDate renders a date in es-CO style: "2 de enero de 2025"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), longMonths[t.Month()-1], t.Year())
}

// FormatTime renders a time of day: "14:30:05"
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// GenerateMockAddress generates a random Celo-style address (0x + 40 hex chars)
func GenerateMockAddress() string {
	var b [20]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		return "0x" + strings.Repeat("0", 40)
	}
	return "0x" + hex.EncodeToString(b[:])
}

// IsValidAddress reports whether address is a well-formed Celo address
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// splitAtDecimals inserts the decimal point into an integer digit string.
// Example: splitAtDecimals("24981836", 9) = ("0", "024981836")
func splitAtDecimals(digits string, decimals int) (whole, frac string) {
	for len(digits) <= decimals {
		digits = "0" + digits
	}
	pos := len(digits) - decimals
	return trimZeros(digits[:pos]), digits[pos:]
}

// roundHalfUp rounds the fractional part to p digits, carrying into the whole
// part when needed.
func roundHalfUp(whole, frac string, p int) (string, string) {
	if len(frac) <= p {
		return whole, frac + strings.Repeat("0", p-len(frac))
	}
	if frac[p] < '5' {
		return whole, frac[:p]
	}
	combined := incrementDigits(whole + frac[:p])
	pos := len(combined) - p
	return trimZeros(combined[:pos]), combined[pos:]
}

// incrementDigits adds one to a decimal digit string
func incrementDigits(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

// trimZeros strips leading zeros, keeping at least one digit
func trimZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// groupThousands inserts '.' thousands separators: "1234567" -> "1.234.567"
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
