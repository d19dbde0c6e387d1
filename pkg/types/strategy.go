package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Strategy selects how the workload is partitioned across workers.
// The numeric values are the selectors accepted on the command line.
type Strategy int

const (
	// StrategyCyclic assigns indices id, id+T, id+2T, ... to worker id.
	StrategyCyclic Strategy = iota
	// StrategyBlockCyclic assigns fixed-size chunks id, id+T, ... to worker id.
	StrategyBlockCyclic
	// StrategyFarming lets workers claim chunks from a shared cursor.
	StrategyFarming
)

// MaxWorkers is the largest worker count any run accepts. Configuration may
// lower the cap but never raise it.
const MaxWorkers = 1024

var strategyNames = map[Strategy]string{
	StrategyCyclic:      "cyclic",
	StrategyBlockCyclic: "block-cyclic",
	StrategyFarming:     "farming",
}

// Strategies returns every known strategy in selector order.
func Strategies() []Strategy {
	return []Strategy{StrategyCyclic, StrategyBlockCyclic, StrategyFarming}
}

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy accepts either the numeric selector (0, 1, 2) or a strategy name.
// The result is not range checked when a number is given; callers validate it.
func ParseStrategy(s string) (Strategy, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return Strategy(n), nil
	}
	for strategy, name := range strategyNames {
		if strings.EqualFold(name, s) {
			return strategy, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// CursorKind selects the shared cursor implementation used by farming.
type CursorKind string

const (
	// CursorMutex guards the read-and-advance step with a mutex.
	CursorMutex CursorKind = "mutex"
	// CursorAtomic advances the cursor with a single atomic add.
	CursorAtomic CursorKind = "atomic"
)

// Valid reports whether k is a known cursor kind.
func (k CursorKind) Valid() bool {
	return k == CursorMutex || k == CursorAtomic
}
