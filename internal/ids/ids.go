// Package ids generates the synthetic business identifiers used across
// the order lifecycle. The Generator interface exists so tests can supply
// deterministic values.
package ids

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"
	"time"
)

// Generator hands out order-scoped identifiers.
type Generator interface {
	OrderID() string
	TrackingNumber() string
	RefundID() string
}

type generator struct {
	counter uint64
}

// NewGenerator returns the default generator. Order ids are monotonic,
// starting at ORD-1000.
func NewGenerator() Generator {
	return &generator{counter: 999}
}

func (g *generator) OrderID() string {
	return fmt.Sprintf("ORD-%d", atomic.AddUint64(&g.counter, 1))
}

func (g *generator) TrackingNumber() string {
	return fmt.Sprintf("TRK%d%s", time.Now().UnixMilli(), strings.ToUpper(randomSuffix(6)))
}

func (g *generator) RefundID() string {
	return fmt.Sprintf("REF-%d", time.Now().UnixMilli())
}

// NewTransactionID returns a gateway-style transaction identifier.
func NewTransactionID() string {
	return fmt.Sprintf("TXN-%d-%s", time.Now().UnixMilli(), randomSuffix(9))
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			// fallback: time-based entropy
			idx = big.NewInt(time.Now().UnixNano() % int64(len(suffixAlphabet)))
		}
		b[i] = suffixAlphabet[idx.Int64()]
	}
	return string(b)
}
