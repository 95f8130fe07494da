package registry

import (
	"samecity/internal/entities"
	"samecity/internal/service/delivery"
)

// Registry picks the courier backend for a station type. Unknown types fall
// back to self-delivery, which never calls out.
type Registry struct {
	providers map[entities.StationType]delivery.Provider
	fallback  delivery.Provider
}

func New(self, dada, uu delivery.Provider) *Registry {
	return &Registry{
		providers: map[entities.StationType]delivery.Provider{
			entities.StationSelf: self,
			entities.StationDada: dada,
			entities.StationUU:   uu,
		},
		fallback: self,
	}
}

func (r *Registry) Get(stationType entities.StationType) delivery.Provider {
	if p, ok := r.providers[stationType]; ok && p != nil {
		return p
	}
	return r.fallback
}
