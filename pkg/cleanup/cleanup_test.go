package cleanup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanUp(t *testing.T) {
	var order []string
	Register(&Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	Register(&Job{Name: "server", F: func() error {
		order = append(order, "server")
		return errors.New("busy")
	}})

	err := CleanUp()
	assert.EqualError(t, err, "server: busy")
	assert.Equal(t, []string{"server", "pool"}, order)

	assert.NoError(t, CleanUp())
	assert.Len(t, order, 2)
}
