// Package idgen produces short human-friendly identifiers drawn from a
// bounded numeric space. Uniqueness among live rows is not guaranteed here:
// the database enforces it with unique indexes, and callers retry on
// gorm.ErrDuplicatedKey up to MaxAttempts.
package idgen

import (
	"fmt"
	"math/rand"
)

const (
	// CodeWidth is the fixed width of generated numeric identifiers.
	CodeWidth = 5

	codeMin = 10000
	codeMax = 99999
)

// MaxAttempts bounds retries when the store reports an identifier collision.
const MaxAttempts = 5

// NumericCode returns a random zero-padded numeric identifier.
func NumericCode() string {
	return fmt.Sprintf("%0*d", CodeWidth, codeMin+rand.Intn(codeMax-codeMin+1))
}

// ExternalID returns a role-prefixed user identifier such as "stu_10482".
func ExternalID(prefix string) string {
	return prefix + "_" + NumericCode()
}
