package usecase

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var memberIDFormat = regexp.MustCompile(`^[0-9A-Z]{9}$`)

func TestNewMemberIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewMemberID()
		assert.Regexp(t, memberIDFormat, id)
	}
}

// Com 36^9 combinações, 10 mil gerações não devem colidir na prática
func TestNewMemberIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 10000)
	collisions := 0

	for i := 0; i < 10000; i++ {
		id := NewMemberID()
		if seen[id] {
			collisions++
		}
		seen[id] = true
	}

	assert.Zero(t, collisions)
}
