// Package obslog wraps go.uber.org/zap for the façade and CLI layers: a
// nil-safe default logger so a caller that doesn't care about logging
// never has to construct one (spec.md's core accepts no configuration
// beyond logic/premises/conclusion; logging is purely an observability
// add-on at the request boundary, mirroring how app.py's Flask routes are
// the only layer that ever logs, never Problem/Prover themselves).
package obslog

import "go.uber.org/zap"

// Nop is the default logger used whenever a caller passes a nil
// *zap.Logger into the façade.
var Nop = zap.NewNop()

// Or returns l if non-nil, otherwise Nop.
func Or(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Nop
	}
	return l
}
