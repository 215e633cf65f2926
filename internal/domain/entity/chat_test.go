package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("alice", "bob"), PairKey("bob", "alice"))
	assert.Equal(t, "alice_bob", PairKey("bob", "alice"))
}

func TestSortedPair(t *testing.T) {
	assert.Equal(t, []string{"alice", "bob"}, SortedPair("bob", "alice"))
	assert.Equal(t, []string{"alice", "bob"}, SortedPair("alice", "bob"))
}
