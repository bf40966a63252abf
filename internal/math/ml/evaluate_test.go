package ml

import (
	"bytes"
	"testing"

	"github.com/drakos74/iris-knn/internal/dataset"
	"github.com/drakos74/iris-knn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {

	ds, err := dataset.Load("../../../data/iris_2d.csv")
	require.NoError(t, err)

	train, test, err := Split(ds, 0.6, 44111342)
	require.NoError(t, err)
	assert.Equal(t, 90, train.Size())
	assert.Equal(t, 60, test.Size())
	assert.Equal(t, ds.XLabel, train.XLabel)
	assert.Equal(t, ds.YLabel, test.YLabel)

	again, _, err := Split(ds, 0.6, 44111342)
	require.NoError(t, err)
	assert.Equal(t, train, again)

	type split struct {
		ds    model.Dataset
		split float64
	}

	invalid := map[string]split{
		"zero":     {ds: ds, split: 0},
		"one":      {ds: ds, split: 1},
		"negative": {ds: ds, split: -0.5},
		"too-few":  {ds: twoSamples(), split: 0.2},
	}

	for name, tt := range invalid {
		t.Run(name, func(t *testing.T) {
			_, _, err := Split(tt.ds, tt.split, 1)
			assert.ErrorIs(t, err, model.InvalidArgumentErr)
		})
	}

}

func TestEvaluate(t *testing.T) {

	ds, err := dataset.Load("../../../data/iris_2d.csv")
	require.NoError(t, err)

	report, err := Evaluate(ds, 0.6, 44111342,
		NewNearestEngine(5),
		NewGolearn(5),
		NewGoml(5),
		NewForest(50),
		NewNet(100),
	)
	require.NoError(t, err)
	assert.Equal(t, 90, report.Train)
	assert.Equal(t, 60, report.Test)
	require.Len(t, report.Scores, 5)

	for _, score := range report.Scores {
		assert.NotEmpty(t, score.Summary)
		if score.Engine == "net" {
			// random initial weights, better than a guess is enough
			assert.Greater(t, score.Accuracy, 0.5, score.Engine)
			continue
		}
		// petal measurements separate the species well
		assert.Greater(t, score.Accuracy, 0.8, score.Engine)
	}

	var b bytes.Buffer
	report.Render(&b)
	assert.Contains(t, b.String(), "nearest")
	assert.Contains(t, b.String(), "golearn")
	assert.Contains(t, b.String(), "net")

}

func TestEngines_NotFitted(t *testing.T) {

	engines := []Engine{NewGolearn(3), NewGoml(3), NewForest(3), NewNet(3)}
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			_, err := e.Predict(model.Point{X: 1, Y: 1})
			assert.Error(t, err)
			assert.ErrorIs(t, e.Fit(model.Dataset{}), model.InvalidArgumentErr)
		})
	}

}

func TestEngines_Separated(t *testing.T) {

	ds := model.Dataset{Samples: []model.Sample{
		{X: 1, Y: 1, Label: "setosa"},
		{X: 1.1, Y: 1.2, Label: "setosa"},
		{X: 0.9, Y: 1.1, Label: "setosa"},
		{X: 5, Y: 5, Label: "virginica"},
		{X: 5.2, Y: 4.9, Label: "virginica"},
		{X: 4.8, Y: 5.1, Label: "virginica"},
	}}

	engines := []Engine{NewNearestEngine(3), NewGolearn(3), NewGoml(3), NewNet(300)}
	for _, e := range engines {
		t.Run(e.Name(), func(t *testing.T) {
			require.NoError(t, e.Fit(ds))
			label, err := e.Predict(model.Point{X: 1.05, Y: 1.05})
			require.NoError(t, err)
			assert.Equal(t, "setosa", label)
			label, err = e.Predict(model.Point{X: 5.1, Y: 5})
			require.NoError(t, err)
			assert.Equal(t, "virginica", label)
		})
	}

}

func TestNet_Epochs(t *testing.T) {

	ds := model.Dataset{Samples: []model.Sample{
		{X: 1, Y: 1, Label: "setosa"},
		{X: 5, Y: 5, Label: "virginica"},
	}}

	type test struct {
		epochs int
		err    error
	}

	tests := map[string]test{
		"zero":     {epochs: 0, err: model.InvalidArgumentErr},
		"negative": {epochs: -1, err: model.InvalidArgumentErr},
		"one":      {epochs: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := NewNet(tt.epochs)
			err := n.Fit(ds)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				_, err = n.Predict(model.Point{X: 1, Y: 1})
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			label, err := n.Predict(model.Point{X: 1, Y: 1})
			require.NoError(t, err)
			assert.Contains(t, []string{"setosa", "virginica"}, label)
		})
	}

}
