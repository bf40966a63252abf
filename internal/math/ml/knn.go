package ml

import (
	"fmt"
	"sort"

	"github.com/drakos74/iris-knn/internal/math"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// DefaultOrder is the order in which tied votes are resolved.
var DefaultOrder = []string{"versicolor", "setosa", "virginica"}

// Distance is the euclidean distance between two points.
func Distance(p, q model.Point) float64 {
	return floats.Distance([]float64{p.X, p.Y}, []float64{q.X, q.Y}, 2)
}

// Rank orders all samples by their rounded distance to the given point.
// Samples at the same rounded distance keep their order in the dataset.
func Rank(ds model.Dataset, p model.Point) []model.Neighbour {
	ranking := make([]model.Neighbour, len(ds.Samples))
	for i, s := range ds.Samples {
		ranking[i] = model.Neighbour{
			Distance: math.Round(Distance(s.Point(), p)),
			Index:    i,
			Label:    s.Label,
		}
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Distance < ranking[j].Distance
	})
	return ranking
}

// Nearest classifies points by a majority vote of their k nearest samples.
type Nearest struct {
	order map[string]int
}

// NewNearest creates a classifier resolving tied votes in the given label order.
// Without an order DefaultOrder is used.
func NewNearest(order ...string) *Nearest {
	if len(order) == 0 {
		order = DefaultOrder
	}
	o := make(map[string]int, len(order))
	for i, label := range order {
		if _, ok := o[label]; !ok {
			o[label] = i
		}
	}
	return &Nearest{order: o}
}

// Classify returns the majority label among the k samples closest to p.
// k larger than the dataset is clamped to its size.
func (n *Nearest) Classify(ds model.Dataset, p model.Point, k int) (model.Prediction, error) {
	if k < 1 {
		return model.Prediction{}, fmt.Errorf("neighbour count must be at least 1, got %d: %w", k, model.InvalidArgumentErr)
	}
	if ds.Size() == 0 {
		return model.Prediction{}, fmt.Errorf("cannot classify against an empty dataset: %w", model.InvalidArgumentErr)
	}
	if k > ds.Size() {
		k = ds.Size()
	}

	neighbours := Rank(ds, p)[:k]
	label, votes := n.Vote(neighbours)

	return model.Prediction{
		ID:         uuid.New().String(),
		Point:      p,
		K:          k,
		Label:      label,
		Votes:      votes,
		Neighbours: neighbours,
	}, nil
}

// Vote counts the labels of the given neighbours and returns the most common.
// Equal counts go to the label that comes first in the classifier order,
// labels outside of it rank after, nearest first.
func (n *Nearest) Vote(neighbours []model.Neighbour) (string, map[string]int) {
	votes := make(map[string]int)
	candidates := make([]string, 0)
	for _, nb := range neighbours {
		if _, ok := votes[nb.Label]; !ok {
			candidates = append(candidates, nb.Label)
		}
		votes[nb.Label]++
	}

	best := -1
	for i, c := range candidates {
		if best < 0 {
			best = i
			continue
		}
		b := candidates[best]
		if votes[c] > votes[b] || (votes[c] == votes[b] && n.priority(c, i) < n.priority(b, best)) {
			best = i
		}
	}
	if best < 0 {
		return "", votes
	}
	return candidates[best], votes
}

func (n *Nearest) priority(label string, appearance int) int {
	if p, ok := n.order[label]; ok {
		return p
	}
	return len(n.order) + appearance
}

// NearestEngine wraps the nearest neighbour classifier with a fixed k.
type NearestEngine struct {
	k       int
	nearest *Nearest
	ds      model.Dataset
}

// NewNearestEngine creates an engine voting among k neighbours.
func NewNearestEngine(k int, order ...string) *NearestEngine {
	return &NearestEngine{
		k:       k,
		nearest: NewNearest(order...),
	}
}

func (e *NearestEngine) Name() string {
	return "nearest"
}

func (e *NearestEngine) Fit(ds model.Dataset) error {
	if ds.Size() == 0 {
		return fmt.Errorf("no samples to fit: %w", model.InvalidArgumentErr)
	}
	e.ds = ds
	return nil
}

func (e *NearestEngine) Predict(p model.Point) (string, error) {
	prediction, err := e.nearest.Classify(e.ds, p, e.k)
	if err != nil {
		return "", err
	}
	return prediction.Label, nil
}
