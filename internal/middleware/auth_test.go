package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", NormalizeToken("abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", NormalizeToken("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", NormalizeToken("bearer   abc.def.ghi  "))
	assert.Equal(t, "", NormalizeToken("   "))
	assert.Equal(t, "", NormalizeToken(""))
}
