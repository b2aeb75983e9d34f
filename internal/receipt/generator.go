package receipt

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/fx"
)

var Module = fx.Module("receipt",
	fx.Provide(NewGenerator),
)

const (
	prefix    = "BILL"
	suffixLow = 100000
	suffixHi  = 999999
)

// Generator mints human-readable receipt references. References are not
// guaranteed unique by the generator; the store's unique constraint is
// the authority and callers retry on collision.
type Generator interface {
	Generate() string
}

type randomGenerator struct{}

func NewGenerator() Generator {
	return randomGenerator{}
}

// Generate returns a reference such as "BILL482913": the fixed prefix
// plus a uniform six-digit suffix.
func (randomGenerator) Generate() string {
	return fmt.Sprintf("%s%d", prefix, rand.IntN(suffixHi-suffixLow+1)+suffixLow)
}
