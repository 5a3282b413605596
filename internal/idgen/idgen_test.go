package idgen

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := NumericCode()
		assert.Len(t, code, CodeWidth)

		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 10000)
		assert.LessOrEqual(t, n, 99999)
	}
}

func TestExternalID(t *testing.T) {
	id := ExternalID("stu")
	assert.Regexp(t, `^stu_\d{5}$`, id)
}
