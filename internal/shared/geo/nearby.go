package geo

import "sort"

type SortKey int

const (
	// SortNearest orders results ascending by distance.
	SortNearest SortKey = iota
	// SortByRating orders results descending by rating.
	SortByRating
)

// Locatable is implemented by every entity that can appear in a
// proximity result set.
type Locatable interface {
	Coord() Coordinate
	Score() float64
}

// Match annotates an entity with its distance from the query origin,
// rounded to one decimal place.
type Match[T Locatable] struct {
	Item       T
	DistanceKm float64
}

// Nearby filters items to those within radiusKm of origin and sorts
// them by the given key. The radius boundary is inclusive and is
// applied to the rounded distance, so a caller always sees a result
// set consistent with the distances it displays. Sorting is stable:
// querying an unchanged entity set repeatedly yields identical order.
// A negative radius yields an empty result set.
func Nearby[T Locatable](items []T, origin Coordinate, radiusKm float64, key SortKey) []Match[T] {
	matches := make([]Match[T], 0, len(items))
	if radiusKm < 0 {
		return matches
	}

	for _, item := range items {
		d := Round1(DistanceKm(origin, item.Coord()))
		if d <= radiusKm {
			matches = append(matches, Match[T]{Item: item, DistanceKm: d})
		}
	}

	switch key {
	case SortByRating:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].Item.Score() > matches[j].Item.Score()
		})
	default:
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].DistanceKm < matches[j].DistanceKm
		})
	}

	return matches
}
