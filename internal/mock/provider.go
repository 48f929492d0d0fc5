// Package mock generates the in-memory reference data and trip events the
// planner runs on: destinations, offers and a chain of sequential trip events.
//
// All randomness comes from the *rand.Rand passed to New, so a fixed seed
// yields the same data set. A Provider is not safe for concurrent generation;
// the lookup methods are read-only and may be shared once New returns.
package mock

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// Generation bounds, all inclusive.
const (
	minPictures = 1
	maxPictures = 5

	minOffers     = 5
	maxOffers     = 10
	minOfferPrice = 10
	maxOfferPrice = 80

	minSelectedOffers = 3
	maxSelectedOffers = 5
	selectedChance    = 0.3

	minGap      = 15 * time.Minute
	maxGap      = 12 * time.Hour
	minDuration = 30 * time.Minute
	maxDuration = 90 * time.Minute

	minBasePrice = 500
	maxBasePrice = 1500

	descriptionWords = 21
)

var destinationNames = []string{"Amsterdam", "Geneva", "Chamonix"}

// Provider owns the generated reference data and produces trip events from it.
type Provider struct {
	rng          *rand.Rand
	now          time.Time
	destinations []domain.Destination
	offers       []domain.Offer
}

// New builds the reference data (destinations and offers) using rng.
// now anchors the first generated trip event.
func New(rng *rand.Rand, now time.Time) *Provider {
	p := &Provider{rng: rng, now: now}

	for i, name := range destinationNames {
		p.destinations = append(p.destinations, domain.Destination{
			ID:          i + 1,
			Name:        name,
			Description: name + ", " + lorem(rng, descriptionWords),
			Pictures:    p.generatePictures(),
		})
	}

	n := intBetween(rng, minOffers, maxOffers)
	for id := 1; id <= n; id++ {
		p.offers = append(p.offers, domain.Offer{
			ID:    id,
			Title: fmt.Sprintf("Offer %d", id),
			Price: intBetween(rng, minOfferPrice, maxOfferPrice),
		})
	}
	return p
}

// NewSeeded is a convenience wrapper around New for a deterministic data set.
func NewSeeded(seed uint64, now time.Time) *Provider {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), now)
}

// ListDestinations returns all destinations in ID order.
func (p *Provider) ListDestinations() []domain.Destination {
	return slices.Clone(p.destinations)
}

// ListOffers returns all offers in ID order.
func (p *Provider) ListOffers() []domain.Offer {
	return slices.Clone(p.offers)
}

// Destination looks up a destination by ID.
func (p *Provider) Destination(id int) (domain.Destination, bool) {
	if id < 1 || id > len(p.destinations) {
		return domain.Destination{}, false
	}
	return p.destinations[id-1], true
}

// Offer looks up an offer by ID.
func (p *Provider) Offer(id int) (domain.Offer, bool) {
	if id < 1 || id > len(p.offers) {
		return domain.Offer{}, false
	}
	return p.offers[id-1], true
}

// GenerateOffersSelection picks between 3 and min(5, total offers) distinct
// offer IDs, each independently selected with a 30% chance.
func (p *Provider) GenerateOffersSelection() domain.OfferSelection {
	total := len(p.offers)
	k := intBetween(p.rng, min(minSelectedOffers, total), min(maxSelectedOffers, total))

	sel := make(domain.OfferSelection, k)
	for _, i := range p.rng.Perm(total)[:k] {
		sel[p.offers[i].ID] = p.rng.Float64() < selectedChance
	}
	return sel
}

// GenerateTripEvents returns n trip events with IDs 1..n laid out one after
// another: each starts 15 minutes to 12 hours after the previous one ends
// (the first one after now, truncated to the minute) and lasts 30 to 90 minutes.
func (p *Provider) GenerateTripEvents(n int) []domain.TripEvent {
	events := make([]domain.TripEvent, 0, n)
	cursor := p.now.Truncate(time.Minute)

	for i := range n {
		from := cursor.Add(minutesBetween(p.rng, minGap, maxGap))
		to := from.Add(minutesBetween(p.rng, minDuration, maxDuration))
		cursor = to

		price := intBetween(p.rng, minBasePrice, maxBasePrice)
		events = append(events, domain.TripEvent{
			ID:            i + 1,
			BasePrice:     &price,
			DateFrom:      from,
			DateTo:        to,
			DestinationID: p.destinations[p.rng.IntN(len(p.destinations))].ID,
			Type:          randomEventType(p.rng),
			Offers:        p.GenerateOffersSelection(),
		})
	}
	return events
}

func (p *Provider) generatePictures() []domain.Picture {
	n := intBetween(p.rng, minPictures, maxPictures)
	pics := make([]domain.Picture, n)
	for i := range pics {
		pics[i] = domain.Picture{
			Src:         "http://picsum.photos/300/200?r=" + uuid.Must(uuid.NewRandomFromReader(rngReader{p.rng})).String(),
			Description: lorem(p.rng, intBetween(p.rng, 1, 5)),
		}
	}
	return pics
}

func randomEventType(rng *rand.Rand) domain.EventType {
	types := domain.EventTypes()
	return types[rng.IntN(len(types))]
}

// intBetween returns a uniform random integer in [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// minutesBetween returns a whole number of minutes in [lo, hi].
func minutesBetween(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	return time.Duration(intBetween(rng, int(lo/time.Minute), int(hi/time.Minute))) * time.Minute
}

// rngReader adapts a *rand.Rand to io.Reader so picture IDs follow the seed.
type rngReader struct{ rng *rand.Rand }

func (r rngReader) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = byte(r.rng.Uint32())
	}
	return len(b), nil
}
