// Package credential builds the login identifiers and temporary passwords handed
// out when an administrator provisions a new employee account.
package credential

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

const (
	DefaultCompanyCode = "DF"

	TempPasswordPrefix = "Temp@"
	tempPasswordLength = 4

	// tempPasswordAlphabet leaves out I, O, 0 and 1.
	tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	serialWidth = 4
	namePrefix  = 2
)

// GenerateTempPassword returns TempPasswordPrefix followed by four characters drawn
// uniformly, with replacement, from the unambiguous alphabet.
func GenerateTempPassword() (string, error) {
	var sb strings.Builder
	sb.Grow(len(TempPasswordPrefix) + tempPasswordLength)
	sb.WriteString(TempPasswordPrefix)

	max := big.NewInt(int64(len(tempPasswordAlphabet)))
	for i := 0; i < tempPasswordLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random source: %w", err)
		}
		sb.WriteByte(tempPasswordAlphabet[n.Int64()])
	}
	return sb.String(), nil
}

// FormatLoginID renders {code}{FI}{LA}{year}{serial:04d}, e.g. DFANLE20240004.
// Names shorter than two runes contribute what they have.
func FormatLoginID(firstName, lastName string, year, serial int, companyCode string) string {
	if companyCode == "" {
		companyCode = DefaultCompanyCode
	}
	return fmt.Sprintf("%s%s%s%d%0*d",
		strings.ToUpper(companyCode),
		upperPrefix(firstName),
		upperPrefix(lastName),
		year,
		serialWidth, serial,
	)
}

func upperPrefix(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > namePrefix {
		name = string([]rune(name)[:namePrefix])
	}
	return strings.ToUpper(name)
}
