package scoring

import (
	"sync"

	"github.com/shopspring/decimal"
)

// scoreCell is a one-shot memoization cell. The backing inputs are immutable,
// so a stored value is never invalidated. Failed computations leave the cell
// empty. The mutex makes a constructed Prediction shareable across goroutines.
type scoreCell struct {
	mu    sync.Mutex
	value decimal.Decimal
	done  bool
}

func (c *scoreCell) get(compute func() (decimal.Decimal, error)) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return c.value, nil
	}
	value, err := compute()
	if err != nil {
		return decimal.Decimal{}, err
	}
	c.value = value
	c.done = true
	return value, nil
}
