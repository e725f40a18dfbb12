package gameforge

import (
	"fmt"
	"os"
)

// globalDebug turns on debug checks and traces for every object. Set it with
// SetDebug.
var globalDebug bool

// SetDebug enables debug mode globally: tree operations check for disposed
// objects and suspicious shapes, and state machines trace transitions on
// stderr. Debug mode adds overhead and is meant for development only.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugf prints a trace line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[gameforge] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed object
// is used in a tree operation.
func debugCheckDisposed(g *GameObject, op string) {
	if g.disposed {
		panic(fmt.Sprintf("gameforge debug: %s on disposed object %q", op, g.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(g *GameObject) {
	depth := 0
	for p := g; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugf("warning: tree depth %d exceeds %d (object %q)", depth, debugMaxTreeDepth, g.Name)
	}
}

// debugCheckChildCount warns on stderr if an object has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(g *GameObject) {
	if len(g.children) > debugMaxChildCount {
		debugf("warning: object %q has %d children (threshold %d)", g.Name, len(g.children), debugMaxChildCount)
	}
}
