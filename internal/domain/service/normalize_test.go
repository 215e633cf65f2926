package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	assert.Equal(t, []string{"Music", "Travel"}, StringSet([]string{"Music", "Travel"}))
	assert.Equal(t, []string{"Music", "Travel"}, StringSet("Music, Travel"))
	assert.Equal(t, []string{"Music", "Travel"}, StringSet([]interface{}{"Music", "Travel"}))

	// Duplicates collapse, insertion order is kept, blanks drop.
	assert.Equal(t, []string{"Music", "Travel"}, StringSet("Music,Music, ,Travel"))
	assert.Equal(t, []string{"b", "a"}, StringSet([]string{"b", "a", "b"}))

	assert.Nil(t, StringSet(nil))
	assert.Empty(t, StringSet(42))
	assert.Empty(t, StringSet(" , ,"))
}

func TestStringSetSkipsNonStringItems(t *testing.T) {
	assert.Equal(t, []string{"Music"}, StringSet([]interface{}{"Music", 7, nil}))
}

func TestIntValue(t *testing.T) {
	assert.Equal(t, 28, IntValue(28))
	assert.Equal(t, 28, IntValue(int64(28)))
	assert.Equal(t, 28, IntValue(float64(28.7)))
	assert.Equal(t, 28, IntValue("28"))
	assert.Equal(t, 28, IntValue(" 28 "))

	assert.Equal(t, 0, IntValue(nil))
	assert.Equal(t, 0, IntValue("soon"))
	assert.Equal(t, 0, IntValue([]string{"28"}))
}
