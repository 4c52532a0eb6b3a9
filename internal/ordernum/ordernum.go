// Package ordernum issues human-readable order identifiers of the form
// ORD-YYYYMMDD-XXXXXX, where the date is the current UTC day and the suffix
// is 6 uppercase hex characters drawn from a random UUID.
package ordernum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prefix      = "ORD"
	suffixLen   = 6
	maxAttempts = 1000
)

// ErrExhaustedRetries is returned when no free identifier was found within
// the retry bound. With 16^6 suffix combinations per day this is not expected
// to happen outside of a broken existence check.
var ErrExhaustedRetries = errors.New("ordernum: exhausted retries generating a unique order number")

// ExistsFunc reports whether an identifier is already taken.
type ExistsFunc func(ctx context.Context, orderNo string) (bool, error)

// Generator produces order identifiers. It holds no state between calls, so
// a single Generator is safe for concurrent use.
type Generator struct {
	// now allows tests to pin the date portion.
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Candidate returns a fresh identifier without checking it for uniqueness.
func (g *Generator) Candidate() string {
	date := g.now().UTC().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:suffixLen])

	return fmt.Sprintf("%s-%s-%s", prefix, date, suffix)
}

// Unique returns a candidate identifier for which exists reports false,
// retrying with new candidates up to a fixed bound.
func (g *Generator) Unique(ctx context.Context, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		orderNo := g.Candidate()

		taken, err := exists(ctx, orderNo)
		if err != nil {
			return "", err
		}
		if !taken {
			return orderNo, nil
		}
	}

	return "", ErrExhaustedRetries
}
