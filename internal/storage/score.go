package storage

import (
	"strconv"
	"strings"
)

// Backend names accepted by the --store flag.
const (
	BackendSQLite = "sqlite"
	BackendGdata  = "gdata"
	BackendMemory = "memory"
)

// ParseScore reads a stored score. Empty, non-numeric and negative values
// read as 0 so a damaged record never blocks a game from starting.
func ParseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
