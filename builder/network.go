// SPDX-License-Identifier: MIT
// Package: volcano/builder
//
// network.go: mutable draft shared by constructors before records are emitted.

package builder

import (
	"sort"

	"github.com/katalvlaran/volcano/core"
)

// network accumulates valves and tunnels. Re-adding a valve or tunnel is a no-op,
// so constructors can be composed over shared IDs.
type network struct {
	order   []string
	rates   map[string]int
	tunnels map[string][]string
	seen    map[[2]string]struct{}
}

func newNetwork() *network {
	return &network{
		rates:   make(map[string]int),
		tunnels: make(map[string][]string),
		seen:    make(map[[2]string]struct{}),
	}
}

// addValve inserts id with the given rate unless it already exists.
func (nw *network) addValve(id string, rate int) {
	if _, ok := nw.rates[id]; ok {
		return
	}
	nw.rates[id] = rate
	nw.order = append(nw.order, id)
}

// connect adds tunnels u→v and v→u, skipping self-tunnels and repeats.
func (nw *network) connect(u, v string) {
	if u == v {
		return
	}
	nw.arc(u, v)
	nw.arc(v, u)
}

func (nw *network) arc(u, v string) {
	key := [2]string{u, v}
	if _, ok := nw.seen[key]; ok {
		return
	}
	nw.seen[key] = struct{}{}
	nw.tunnels[u] = append(nw.tunnels[u], v)
}

// valves emits records sorted by ID; tunnels keep insertion order.
func (nw *network) valves() []core.Valve {
	out := make([]core.Valve, 0, len(nw.order))
	for _, id := range nw.order {
		out = append(out, core.Valve{
			ID:      id,
			Rate:    nw.rates[id],
			Tunnels: append([]string(nil), nw.tunnels[id]...),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// addIndexed inserts valves idFn(0..n-1) drawing each rate from cfg.
func addIndexed(nw *network, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		nw.addValve(cfg.idFn(i), cfg.rateFn(cfg.rng))
	}
}
