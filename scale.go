package decnum

import (
	"fmt"
	"sync/atomic"
)

// DefaultScale is the number of digits kept after the decimal point unless
// [SetScale] has been called.
const DefaultScale = 16

// curScale holds the package-wide scale. It only affects operations
// performed after it changes; existing values keep their digits.
var curScale atomic.Int32

func init() {
	curScale.Store(DefaultScale)
}

// GetScale returns the current package-wide scale, the maximum number of
// digits after the decimal point retained by operation results.
func GetScale() int {
	return int(curScale.Load())
}

// SetScale sets the package-wide scale. The change applies to subsequent
// operations only; values produced earlier are re-rounded lazily, for
// example through [Decimal.Normalize].
//
// SetScale panics if scale is less than 1.
func SetScale(scale int) {
	if scale < 1 {
		panic(fmt.Sprintf("SetScale(%v) failed: scale must be positive", scale))
	}
	curScale.Store(int32(scale))
}
