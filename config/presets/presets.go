// Package presets contains named configurations that overwrite defaults.
package presets

import (
	"fmt"
	"sort"

	"github.com/spacemeshos/go-pluginaccount/config"
)

var presets = map[string]config.Config{}

func register(name string, conf config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset %s is already registered", name))
	}
	presets[name] = conf
}

// Options returns names of registered presets.
func Options() []string {
	var rst []string
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get preset by name.
func Get(name string) (config.Config, error) {
	conf, exist := presets[name]
	if !exist {
		return config.Config{}, fmt.Errorf("preset %s is not registered. options %v", name, Options())
	}
	conf.Plugins = append([]string(nil), conf.Plugins...)
	return conf, nil
}
