package livedisplay

// #region imports
import (
	"io"
	"log"
)

// #endregion imports

// #region registry

// Registry holds the ordered list of features that survived boot and their
// aggregate capability set. The set is fixed once Register has run; no
// feature may be added or removed afterward.
type Registry struct {
	live []Feature
	caps CapabilitySet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register attempts OnStart on each feature in order. Features that start
// successfully contribute their capability bits and join the dispatch
// list; failures are dropped for the process lifetime, fatal only to that
// feature.
func (r *Registry) Register(features ...Feature) {
	for _, f := range features {
		if !safeStart(f) {
			log.Printf("[DISP] feature %s failed to start, disabling", f.Name())
			continue
		}
		r.caps |= f.Capabilities()
		r.live = append(r.live, f)
	}
}

// Capabilities returns the aggregate capability set of all live features.
func (r *Registry) Capabilities() CapabilitySet {
	return r.caps
}

// Live returns the number of live features.
func (r *Registry) Live() int {
	return len(r.live)
}

// Find returns the live feature with the given name, or nil.
func (r *Registry) Find(name string) Feature {
	for _, f := range r.live {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// ForEachLive invokes fn for every live feature in registration order.
// A panicking feature is logged and does not stop the broadcast.
func (r *Registry) ForEachLive(fn func(Feature)) {
	for _, f := range r.live {
		safeCall(f, fn)
	}
}

// Dump writes each live feature's diagnostic state.
func (r *Registry) Dump(w io.Writer) {
	for _, f := range r.live {
		f.Dump(w)
	}
}

// #endregion registry

// #region panic-guards

func safeStart(f Feature) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[DISP] feature %s panicked in OnStart: %v", f.Name(), rec)
			ok = false
		}
	}()
	return f.OnStart()
}

func safeCall(f Feature, fn func(Feature)) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[DISP] feature %s panicked: %v", f.Name(), rec)
		}
	}()
	fn(f)
}

// #endregion panic-guards
