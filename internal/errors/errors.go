// Package errors re-exports github.com/cockroachdb/errors so the rest of the
// module wraps, marks and inspects errors through a single import.
//
// Usage:
//
//	if err := client.Get(ctx, sel); err != nil {
//	    return errors.Wrap(err, "fetch military aircraft")
//	}
//
//	// Tag a wrapped error with a sentinel so callers can errors.Is it
//	fault := errors.Mark(err, adsb.ErrSourceFault)
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Mark  = crdb.Mark
)

// User-facing hints
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	FlattenHints = crdb.FlattenHints
)

// Inspection
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)
