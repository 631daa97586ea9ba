// Package registry holds the ordered, id-addressed collection of leverages.
//
// Lookups are linear scans so that list order always matches row order in
// the UI. When ids collide, the first entry in list order wins. A Registry
// is not safe for concurrent use; callers serialize access.
package registry

import (
	"github.com/google/uuid"

	"gigaleverage/internal/models"
)

// Catalog is the subset of the provider catalog the registry needs.
type Catalog interface {
	Provider(providerID string) (models.Provider, bool)
	ListDataStreams(providerID string) []models.DataStream
}

type Registry struct {
	catalog   Catalog
	leverages []models.Leverage
	newID     func() string
}

func New(catalog Catalog) *Registry {
	return &Registry{
		catalog: catalog,
		newID:   uuid.NewString,
	}
}

// Create appends a new leverage with a freshly generated id. Unknown
// provider ids are accepted as-is.
func (r *Registry) Create(providerID, dataStreamID, dataStreamName string) models.Leverage {
	lev := models.Leverage{
		ID:       r.newID(),
		Provider: r.resolveProvider(providerID),
		DataStream: models.DataStream{
			ID:   dataStreamID,
			Name: dataStreamName,
		},
	}
	r.leverages = append(r.leverages, lev)
	return lev
}

// Edit returns the data streams of the leverage's provider so the caller can
// repopulate its stream picker. It never mutates the registry.
func (r *Registry) Edit(leverageID string) ([]models.DataStream, bool) {
	i := r.indexOf(leverageID)
	if i < 0 {
		return nil, false
	}
	return r.catalog.ListDataStreams(r.leverages[i].Provider.ID), true
}

// Update replaces provider and data stream of the first matching leverage,
// keeping its id and position.
func (r *Registry) Update(leverageID, providerID, dataStreamID, dataStreamName string) bool {
	i := r.indexOf(leverageID)
	if i < 0 {
		return false
	}
	r.leverages[i].Provider = r.resolveProvider(providerID)
	r.leverages[i].DataStream = models.DataStream{
		ID:   dataStreamID,
		Name: dataStreamName,
	}
	return true
}

func (r *Registry) Delete(leverageID string) bool {
	i := r.indexOf(leverageID)
	if i < 0 {
		return false
	}
	r.leverages = append(r.leverages[:i], r.leverages[i+1:]...)
	return true
}

// List returns a copy of the leverages in display order.
func (r *Registry) List() []models.Leverage {
	out := make([]models.Leverage, len(r.leverages))
	copy(out, r.leverages)
	return out
}

func (r *Registry) Len() int {
	return len(r.leverages)
}

// Restore replaces the contents with a previously persisted snapshot.
func (r *Registry) Restore(entries []models.Leverage) {
	r.leverages = make([]models.Leverage, len(entries))
	copy(r.leverages, entries)
}

func (r *Registry) indexOf(leverageID string) int {
	for i := range r.leverages {
		if r.leverages[i].ID == leverageID {
			return i
		}
	}
	return -1
}

func (r *Registry) resolveProvider(providerID string) models.Provider {
	if p, ok := r.catalog.Provider(providerID); ok {
		return p
	}
	return models.Provider{ID: providerID, Name: providerID}
}
