// Package session owns the single in-memory advisory session: the project
// descriptor, the candidate catalogue, the current recommendation, and the
// busy/error state around generation requests. All state is
// process-lifetime only.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"stratify/internal/advisor"
	"stratify/internal/catalog"
	"stratify/internal/recommendation"
)

var (
	// ErrBusy is returned when a generation request is started while one is
	// already outstanding. Requests are rejected, not queued.
	ErrBusy = errors.New("session: a generation request is already in progress")
	// ErrNoRecommendation marks an edit attempted before any recommendation
	// exists. Edits are no-ops in that state, surfaced as a typed sentinel.
	ErrNoRecommendation = errors.New("session: no recommendation to edit")
	// ErrProductNotFound marks a catalogue operation with an unknown id.
	ErrProductNotFound = errors.New("session: product not found")
	// ErrStale marks a generation whose response was discarded because a
	// reset or a newer request superseded it while it was in flight.
	ErrStale = errors.New("session: request superseded")
)

// Generator is the slice of the advisor the session depends on.
type Generator interface {
	GenerateRecommendation(ctx context.Context, project catalog.ProjectDetails, products []catalog.CandidateProduct) (*recommendation.SystemRecommendation, error)
	GenerateDescription(ctx context.Context, product catalog.CandidateProduct) (string, error)
}

var _ Generator = (*advisor.Advisor)(nil)

// Snapshot is a consistent copy of the observable session state.
type Snapshot struct {
	Project        catalog.ProjectDetails               `json:"project"`
	Products       []catalog.CandidateProduct           `json:"products"`
	LayerTypes     []string                             `json:"layer_types"`
	Recommendation *recommendation.SystemRecommendation `json:"recommendation"`
	IsLoading      bool                                 `json:"is_loading"`
	Error          string                               `json:"error"`
}

// Session is a single-writer state machine. Every mutation happens under
// one mutex; the only suspension point (the LLM call) runs outside it.
type Session struct {
	gen Generator

	mu         sync.Mutex
	project    catalog.ProjectDetails
	products   []catalog.CandidateProduct
	layerTypes []string
	rec        *recommendation.SystemRecommendation
	lastErr    string
	busy       bool

	// token fences stale completions: each generation request captures the
	// current value, Reset and newer requests advance it, and a completion
	// whose captured token is no longer current is discarded.
	token uint64

	broadcaster
}

func New(gen Generator) *Session {
	s := &Session{gen: gen}
	s.resetLocked()
	return s
}

func (s *Session) resetLocked() {
	s.project = catalog.DefaultProject()
	s.products = catalog.DefaultProducts()
	s.layerTypes = catalog.DefaultLayerTypes()
	s.rec = nil
	s.lastErr = ""
	s.busy = false
	s.token++
}

// Reset discards the recommendation and any error/loading state and
// restores the seed project and catalogue. An in-flight generation keeps
// running but its result will be stale and dropped on arrival.
func (s *Session) Reset() {
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	s.emit(Event{Type: EventReset})
}

// Snapshot returns a deep-enough copy for rendering: slices are cloned,
// the recommendation is cloned wholesale.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Project:    s.project,
		Products:   append([]catalog.CandidateProduct(nil), s.products...),
		LayerTypes: append([]string(nil), s.layerTypes...),
		IsLoading:  s.busy,
		Error:      s.lastErr,
	}
	if s.rec != nil {
		rec := cloneRecommendation(*s.rec)
		snap.Recommendation = &rec
	}
	return snap
}

// SetProject replaces the project descriptor. Rejected while a generation
// is outstanding so the request payload cannot drift mid-flight.
func (s *Session) SetProject(p catalog.ProjectDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	if !p.Constraints.TempRangeC.Valid() {
		return errors.New("session: temp_range_C min exceeds max")
	}
	s.project = p
	return nil
}

// AddLayerType extends the layer-role vocabulary; duplicates and empty
// strings are ignored.
func (s *Session) AddLayerType(t string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layerTypes = catalog.AddLayerType(s.layerTypes, t)
}

// AddProduct stores the product under a fresh opaque id and returns it.
func (s *Session) AddProduct(p catalog.CandidateProduct) catalog.CandidateProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.NewString()
	s.products = append(s.products, p)
	return p
}

// UpdateProduct replaces the stored product with the same id.
func (s *Session) UpdateProduct(p catalog.CandidateProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return ErrProductNotFound
}

// RemoveProduct deletes a catalogue entry by id. The id is never reused.
func (s *Session) RemoveProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Product looks up a catalogue entry by id.
func (s *Session) Product(id string) (catalog.CandidateProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.CandidateProduct{}, ErrProductNotFound
}

// Products returns a copy of the catalogue.
func (s *Session) Products() []catalog.CandidateProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]catalog.CandidateProduct(nil), s.products...)
}

// ComparisonRows derives the manual comparison table from the catalogue.
func (s *Session) ComparisonRows() []catalog.DisplayRow {
	s.mu.Lock()
	products := append([]catalog.CandidateProduct(nil), s.products...)
	s.mu.Unlock()
	return catalog.Rows(products)
}

// RequestRecommendation runs one generation request end to end. While it is
// outstanding the session is busy and further requests are rejected with
// ErrBusy. A completion that arrives after a Reset or after a newer request
// was issued is discarded (ErrStale) so it can never clobber fresher state.
func (s *Session) RequestRecommendation(ctx context.Context) (*recommendation.SystemRecommendation, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	s.lastErr = ""
	s.rec = nil
	s.token++
	token := s.token
	project := s.project
	products := append([]catalog.CandidateProduct(nil), s.products...)
	s.mu.Unlock()
	s.emit(Event{Type: EventGenerating})

	rec, genErr := s.gen.GenerateRecommendation(ctx, project, products)

	s.mu.Lock()
	if token != s.token {
		// Reset (or a future overlapping mode) advanced the token while we
		// were suspended; the session already moved on.
		s.mu.Unlock()
		return nil, ErrStale
	}
	s.busy = false
	if genErr != nil {
		s.lastErr = genErr.Error()
		s.mu.Unlock()
		s.emit(Event{Type: EventError, Message: genErr.Error()})
		return nil, genErr
	}
	s.rec = rec
	out := cloneRecommendation(*rec)
	s.mu.Unlock()
	s.emit(Event{Type: EventRecommendation})
	return &out, nil
}

// GenerateDescription backfills a catalogue product's description in place.
func (s *Session) GenerateDescription(ctx context.Context, id string) (catalog.CandidateProduct, error) {
	product, err := s.Product(id)
	if err != nil {
		return catalog.CandidateProduct{}, err
	}
	desc, err := s.gen.GenerateDescription(ctx, product)
	if err != nil {
		return catalog.CandidateProduct{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Description = desc
			return s.products[i], nil
		}
	}
	// Removed while the call was in flight.
	return catalog.CandidateProduct{}, ErrProductNotFound
}

// EditLayer replaces a layer wholesale. ErrNoRecommendation when nothing
// has been generated; an out-of-range index propagates the edit engine's
// precondition error.
func (s *Session) EditLayer(index int, layer recommendation.SystemLayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return ErrNoRecommendation
	}
	return recommendation.ReplaceLayer(s.rec, index, layer)
}

// ApplyLayerEdits applies typed field edits to one layer.
func (s *Session) ApplyLayerEdits(index int, edits ...recommendation.LayerEdit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return ErrNoRecommendation
	}
	return recommendation.ApplyLayerEdits(s.rec, index, edits...)
}

// SwapProduct promotes an alternative to the active product on one layer.
func (s *Session) SwapProduct(index int, alt recommendation.RecommendedProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return ErrNoRecommendation
	}
	return recommendation.SwapProduct(s.rec, index, alt)
}

func cloneRecommendation(rec recommendation.SystemRecommendation) recommendation.SystemRecommendation {
	rec.Layers = append([]recommendation.SystemLayer(nil), rec.Layers...)
	for i := range rec.Layers {
		rec.Layers[i].Alternatives = append([]recommendation.RecommendedProduct(nil), rec.Layers[i].Alternatives...)
	}
	rec.CompatibilityMatrix = append([]recommendation.CompatibilityEntry(nil), rec.CompatibilityMatrix...)
	rec.EstimatedConsumption.PerProduct = append([]recommendation.ProductConsumption(nil), rec.EstimatedConsumption.PerProduct...)
	rec.References = append([]string(nil), rec.References...)
	return rec
}
