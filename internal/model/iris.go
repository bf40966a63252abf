package model

// Sample is a labeled point of the dataset.
type Sample struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Point is an unlabeled query point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point returns the coordinates of the sample.
func (s Sample) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// Dataset is the ordered collection of samples loaded from a file,
// together with the axis names of the header row.
type Dataset struct {
	XLabel  string   `json:"x_label"`
	YLabel  string   `json:"y_label"`
	Samples []Sample `json:"samples"`
}

// Size returns the number of samples.
func (ds Dataset) Size() int {
	return len(ds.Samples)
}

// Labels returns the distinct labels in order of first appearance.
func (ds Dataset) Labels() []string {
	seen := make(map[string]struct{})
	labels := make([]string, 0)
	for _, s := range ds.Samples {
		if _, ok := seen[s.Label]; !ok {
			seen[s.Label] = struct{}{}
			labels = append(labels, s.Label)
		}
	}
	return labels
}

// Neighbour is one entry of a neighbour ranking.
type Neighbour struct {
	Distance float64 `json:"distance"`
	Index    int     `json:"index"`
	Label    string  `json:"label"`
}

// Prediction is the outcome of classifying a query point.
type Prediction struct {
	ID         string         `json:"id"`
	Point      Point          `json:"point"`
	K          int            `json:"k"`
	Label      string         `json:"label"`
	Votes      map[string]int `json:"votes"`
	Neighbours []Neighbour    `json:"neighbours"`
}
