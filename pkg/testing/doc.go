// Package testing provides helpers for deterministic layout and
// animation tests.
//
// # Animation Testing
//
// Control time instead of sleeping:
//
//	clock := uitest.NewFakeClock()
//	restore := uitest.InstallClock(clock)
//	defer restore()
//
//	clock.Advance(100 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/uikit/pkg/testing"
package testing
