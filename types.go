package routefsm

import (
	"io"
	"log/slog"
)

// Action is a side-effecting callback fired when its edge is traversed.
// The engine invokes actions synchronously, in registration order, exactly
// once per hop; it never inspects, retries, or wraps them. A panicking
// action propagates to the caller of Go, with the machine's state
// reflecting exactly the hops completed before the panic.
type Action func()

// Logger is the default diagnostic logger used when none is provided.
// It discards everything; diagnostics are purely observational and never
// affect control flow.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
