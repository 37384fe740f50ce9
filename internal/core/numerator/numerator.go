// Package numerator provides document auto-numbering.
// Sequences are kept in memory and owned by the store, not derived
// from collection length (which collides after any delete).
package numerator

import (
	"fmt"
	"sync"
	"time"
)

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV", "CUST")
	Prefix string

	// IncludeYear adds year to the number
	IncludeYear bool

	// PadWidth is the minimum number width (default 5)
	PadWidth int

	// ResetPeriod: "year", "month", "never"
	ResetPeriod string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: "year",
	}
}

// Service provides document numbering functionality.
// Numbers are strictly sequential within a sequence key; keys
// roll over according to Config.ResetPeriod.
type Service struct {
	mu   sync.Mutex
	seqs map[string]int64
}

// New creates a new numerator service with empty sequences.
func New() *Service {
	return &Service{
		seqs: make(map[string]int64),
	}
}

// Next generates the next document number.
// Pattern: PREFIX-YEAR-XXXXX (e.g., INV-2024-00001)
func (s *Service) Next(cfg Config, period time.Time) string {
	key := s.buildKey(cfg, period)

	s.mu.Lock()
	s.seqs[key]++
	num := s.seqs[key]
	s.mu.Unlock()

	return s.formatNumber(cfg, period, num)
}

// SetNext sets the value the next call to Next will return for the
// given sequence (used when loading pre-numbered fixture data).
func (s *Service) SetNext(cfg Config, period time.Time, value int64) {
	key := s.buildKey(cfg, period)

	s.mu.Lock()
	s.seqs[key] = value - 1
	s.mu.Unlock()
}

func (s *Service) buildKey(cfg Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%d-%02d", cfg.Prefix, period.Year(), period.Month())
	case "year":
		return fmt.Sprintf("%s_%d", cfg.Prefix, period.Year())
	default:
		return cfg.Prefix
	}
}

func (s *Service) formatNumber(cfg Config, period time.Time, num int64) string {
	pad := cfg.PadWidth
	if pad <= 0 {
		pad = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%d-%0*d", cfg.Prefix, period.Year(), pad, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, pad, num)
}
