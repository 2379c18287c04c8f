// Package session holds the launch-time gate that waits for the auth
// collaborator to report the current session once.
package session

import (
	"context"
	"sync"
)

type Identity struct {
	UID string `json:"uid,omitempty"`
}

func (i Identity) Authenticated() bool {
	return i.UID != ""
}

type State int

const (
	Resolving State = iota
	Resolved
)

func (s State) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "resolving"
}

const (
	GraphUnauthenticated = "unauthenticated"
	GraphAuthenticated   = "authenticated"
)

// Source is a session-state stream. The callback may fire any number of
// times; the returned func stops delivery and must be safe to call from
// inside the callback.
type Source interface {
	Subscribe(callback func(Identity)) (unsubscribe func())
}

// Gate moves from Resolving to Resolved on the first callback of its
// Source and stays there. Later session changes are not observed.
type Gate struct {
	once sync.Once
	done chan struct{}

	mu          sync.Mutex
	state       State
	identity    Identity
	closed      bool
	unsubscribe func()
}

func NewGate(src Source) *Gate {
	g := &Gate{done: make(chan struct{})}

	unsub := src.Subscribe(g.resolve)

	g.mu.Lock()
	g.unsubscribe = unsub
	finished := g.state == Resolved || g.closed
	g.mu.Unlock()

	// the source may have answered synchronously inside Subscribe
	if finished {
		g.release()
	}
	return g
}

func (g *Gate) resolve(id Identity) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	g.once.Do(func() {
		g.mu.Lock()
		g.state = Resolved
		g.identity = id
		g.mu.Unlock()

		close(g.done)
		g.release()
	})
}

func (g *Gate) release() {
	g.mu.Lock()
	unsub := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

// Close detaches the gate from its source. A callback arriving afterwards is
// dropped instead of resolving a gate nobody is looking at.
func (g *Gate) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	g.release()
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Identity returns the resolved identity; ok is false while resolving.
func (g *Gate) Identity() (Identity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.identity, g.state == Resolved
}

// Graph names the navigation graph to expose, or "" while resolving.
func (g *Gate) Graph() string {
	id, ok := g.Identity()
	if !ok {
		return ""
	}
	if id.Authenticated() {
		return GraphAuthenticated
	}
	return GraphUnauthenticated
}

func (g *Gate) Done() <-chan struct{} {
	return g.done
}

func (g *Gate) Wait(ctx context.Context) (Identity, error) {
	select {
	case <-g.done:
		id, _ := g.Identity()
		return id, nil
	case <-ctx.Done():
		return Identity{}, ctx.Err()
	}
}
