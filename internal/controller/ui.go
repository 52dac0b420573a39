// Package controller provides output adapters for displaying embedding results.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/litsplice/internal/model"
)

// UI defines how results reach the user.
// Implementations can use different output methods (simple text, styled, etc).
type UI interface {
	// DisplayResults reports the outcome of a run or check, in target order.
	DisplayResults(results []m.RunResult) error
	// DisplayLiteral prints an encoded literal verbatim.
	DisplayLiteral(text string) error
	// DisplayTargets shows the configured targets.
	DisplayTargets(targets []m.Target) error
}

// resultMessage is the one-line summary shared by all UIs.
func resultMessage(res m.RunResult) string {
	asset := res.Asset.Base()
	host := res.Host.Base()

	switch res.Status {
	case m.StatusUpdated:
		return fmt.Sprintf("Updated %s: embedded %s (%d bytes, %d lines)", host, asset, res.ByteCount, res.LineCount)
	case m.StatusUnchanged:
		return fmt.Sprintf("%s already embeds %s (%d bytes, %d lines)", host, asset, res.ByteCount, res.LineCount)
	case m.StatusUpToDate:
		return fmt.Sprintf("%s is up to date with %s (%d bytes, %d lines)", host, asset, res.ByteCount, res.LineCount)
	case m.StatusStale:
		return fmt.Sprintf("%s is stale: %s differs (%d bytes, %d lines)", host, asset, res.ByteCount, res.LineCount)
	default:
		return fmt.Sprintf("%s: %s (%d bytes, %d lines)", host, asset, res.ByteCount, res.LineCount)
	}
}

func spanPolicy(t m.Target) string {
	if t.KeepStartMarkerLine {
		return "keep marker line"
	}

	return "replace marker"
}
