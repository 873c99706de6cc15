package resilience

import "golang.org/x/sync/singleflight"

// SingleFlight collapses concurrent loads of the same key into one call.
// The zero value is ready to use.
type SingleFlight struct {
	group singleflight.Group
}

// Do runs fn once per in-flight key; shared reports whether the result was
// handed to more than one caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (value any, err error, shared bool) {
	return g.group.Do(key, fn)
}

// Forget drops an in-flight key so the next Do starts a fresh call.
func (g *SingleFlight) Forget(key string) {
	g.group.Forget(key)
}
