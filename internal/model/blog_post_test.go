package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeExcerpt(t *testing.T) {
	short := "짧은 글"
	assert.Equal(t, short, MakeExcerpt(short))

	long := strings.Repeat("가", 150)
	got := MakeExcerpt(long)
	assert.Equal(t, strings.Repeat("가", 100)+"...", got)
}
