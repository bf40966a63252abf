package ml

import "github.com/drakos74/iris-knn/internal/model"

// Engine is a classifier that can be trained on a dataset
// and then asked for the label of a point.
type Engine interface {
	Name() string
	Fit(ds model.Dataset) error
	Predict(p model.Point) (string, error)
}

// indexLabels maps every sample to the index of its label,
// returning the labels in order of first appearance.
func indexLabels(ds model.Dataset) ([]int, []string) {
	labels := ds.Labels()
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	classes := make([]int, len(ds.Samples))
	for i, s := range ds.Samples {
		classes[i] = index[s.Label]
	}
	return classes, labels
}

func features(ds model.Dataset) [][]float64 {
	x := make([][]float64, len(ds.Samples))
	for i, s := range ds.Samples {
		x[i] = []float64{s.X, s.Y}
	}
	return x
}
