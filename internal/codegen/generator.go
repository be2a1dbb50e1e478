package codegen

import (
	"context"
	"crypto/rand"
	"math/big"

	"mastermind_reach/internal/domain"
	"mastermind_reach/internal/game"
	"mastermind_reach/internal/logger"
	"mastermind_reach/internal/randomorg"

	"github.com/prometheus/client_golang/prometheus"
)

var fallbackActivations = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "codegen_fallback_total",
		Help: "Secret codes generated by the local fallback after a random.org failure",
	},
)

func init() {
	prometheus.MustRegister(fallbackActivations)
}

// Generator produces secret codes. The primary source is the random.org
// API; on any failure it falls back to a local cryptographically secure
// generator. The fallback does no I/O and cannot fail, so Generate
// always returns a valid code.
type Generator struct {
	client *randomorg.Client
}

// NewGenerator wires the generator to its randomness service client.
// A nil client skips the network path entirely.
func NewGenerator(client *randomorg.Client) *Generator {
	return &Generator{client: client}
}

// Generate returns a secret code for the difficulty, encoded one ASCII
// digit per position.
func (g *Generator) Generate(ctx context.Context, difficulty domain.Difficulty) string {
	length := difficulty.Settings().SecretLength

	if g.client != nil {
		digits, err := g.client.FetchIntegers(ctx, length, domain.DigitMin, domain.DigitMax)
		if err == nil {
			return game.DigitsToString(digits)
		}
		logger.Warn("random.org unavailable, using local generator", "error", err)
		fallbackActivations.Inc()
	}

	return g.generateLocal(length)
}

// generateLocal draws each digit uniformly from [DigitMin, DigitMax]
// using crypto/rand.
func (g *Generator) generateLocal(length int) string {
	span := big.NewInt(int64(domain.DigitMax - domain.DigitMin + 1))
	digits := make([]int, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, span)
		if err != nil {
			// crypto/rand reading the OS entropy source does not fail
			// in practice; keep the code valid regardless.
			digits[i] = domain.DigitMin
			continue
		}
		digits[i] = domain.DigitMin + int(n.Int64())
	}
	return game.DigitsToString(digits)
}
