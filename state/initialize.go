package state

import (
	"time"

	"go.uber.org/zap"
)

// newLocalEnv creates environment usable before configuration is loaded:
// logging goes nowhere until the program sets up its own logger.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		Log:   zap.NewNop(),
		start: time.Now(),
	}
}
