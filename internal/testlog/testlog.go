// Package testlog wires logr into the test harness. Quiet by default; set
// DEBUG for verbose output through t.Log.
package testlog

import (
	"os"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
)

// New returns a logr.Logger backed by t.Log. Verbosity follows DEBUG so CI
// output stays clean.
func New(t *testing.T) logr.Logger {
	v := 0
	if os.Getenv("DEBUG") != "" {
		v = 4
	}
	return testr.NewWithOptions(t, testr.Options{Verbosity: v})
}
