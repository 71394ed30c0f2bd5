package reference

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/bwmarrin/snowflake"
)

const (
	// Prefix starts every transaction reference number
	Prefix = "TXN"

	suffixLength = 4
	base36       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// SnowflakeGenerator builds reference numbers from a per-node snowflake id
// (millisecond time plus sequence) and a short random suffix
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeGenerator creates a generator for node, which must be unique per running instance
func NewSnowflakeGenerator(node int64) (*SnowflakeGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("create reference node %d: %w", node, err)
	}
	return &SnowflakeGenerator{node: n}, nil
}

// Next returns a new reference number such as TXN1A2B3C4D5E6F7G8H
func (g *SnowflakeGenerator) Next() (string, error) {
	suffix, err := randomSuffix(suffixLength)
	if err != nil {
		return "", fmt.Errorf("generate reference suffix: %w", err)
	}

	return Prefix + strings.ToUpper(g.node.Generate().Base36()) + suffix, nil
}

func randomSuffix(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)

	limit := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(base36[idx.Int64()])
	}

	return b.String(), nil
}
