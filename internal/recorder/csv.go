package recorder

import (
	"fmt"
	"os"
)

// csvHeader matches the legacy trading_log.csv layout.
const csvHeader = "Timestamp,Asset,Signal,Price,T1,T2,SL\n"

// EnsureCSVStub creates the legacy CSV log file with its header if it
// does not exist yet. Nothing ever appends to it; the file is kept for
// compatibility with tooling that expects it to be present.
func EnsureCSVStub(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat csv log: %w", err)
	}
	if err := os.WriteFile(path, []byte(csvHeader), 0644); err != nil {
		return fmt.Errorf("create csv log: %w", err)
	}
	return nil
}
