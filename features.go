package pixeltoaster

import (
	"slices"
	"sync"
)

// Version is set at link time with -ldflags "-X github.com/intuitionamiga/pixeltoaster.Version=...".
var Version = "dev"

var (
	featuresMu       sync.Mutex
	compiledFeatures []string
)

// registerFeature records a build-time feature. Backend files call it from init.
func registerFeature(name string) {
	featuresMu.Lock()
	compiledFeatures = append(compiledFeatures, name)
	featuresMu.Unlock()
}

// Features lists the features compiled into this build, sorted.
func Features() []string {
	featuresMu.Lock()
	defer featuresMu.Unlock()
	out := slices.Clone(compiledFeatures)
	slices.Sort(out)
	return out
}

func init() {
	registerFeature("backend:headless")
	registerFeature("backend:displayer")
}
