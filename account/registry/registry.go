// Package registry maps plugin ids to the plugin code.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/common/types"
)

// New creates Registry instance.
func New() *Registry {
	return &Registry{plugins: map[types.Felt]core.Plugin{}}
}

// Registry stores mapping from plugin id to plugin code.
// Plugin ids are usually computed with core.SelectorFromName.
type Registry struct {
	mu      sync.RWMutex
	plugins map[types.Felt]core.Plugin
}

// Get plugin code for the id if it exists.
func (r *Registry) Get(id types.Felt) core.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.plugins[id]
}

// Register plugin code for the id. Panics if id is zero or already taken.
func (r *Registry) Register(id types.Felt, plugin core.Plugin) {
	if id.IsZero() {
		panic("plugin id must not be zero")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exist := r.plugins[id]; exist {
		panic(fmt.Sprintf("%s already registered", id))
	}
	r.plugins[id] = plugin
}

// IDs returns ids of all registered plugins in ascending order.
func (r *Registry) IDs() []types.Felt {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rst := make([]types.Felt, 0, len(r.plugins))
	for id := range r.plugins {
		rst = append(rst, id)
	}
	sort.Slice(rst, func(i, j int) bool {
		return rst[i].Uint256().Lt(rst[j].Uint256())
	})
	return rst
}
