package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/iris-knn/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG")

func dataset() model.Dataset {
	return model.Dataset{
		XLabel: "petal_length",
		YLabel: "petal_width",
		Samples: []model.Sample{
			{X: 1.4, Y: 0.2, Label: "setosa"},
			{X: 4.7, Y: 1.4, Label: "versicolor"},
			{X: 6.0, Y: 2.5, Label: "virginica"},
			{X: 1.3, Y: 0.3, Label: "setosa"},
		},
	}
}

func TestContext_Render(t *testing.T) {

	c, err := New(dataset(), Options{
		Title:   "Iris base model",
		Palette: map[string]string{"setosa": "green", "virginica": "red"},
		Finding: "your finding",
		Width:   3,
		Height:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, "petal_length", c.plot.X.Label.Text)
	assert.Equal(t, "petal_width", c.plot.Y.Label.Text)

	err = c.AddQuery(model.Point{X: 1.5, Y: 0.25}, "setosa")
	require.NoError(t, err)

	var b bytes.Buffer
	err = c.Render(&b)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b.Bytes(), pngHeader))

}

func TestContext_Save(t *testing.T) {

	c, err := New(dataset(), Options{Width: 2, Height: 2})
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "iris")
	err = c.Save(file)
	require.NoError(t, err)

	b, err := os.ReadFile(file + ".png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, pngHeader))

	err = c.Save(filepath.Join(t.TempDir(), "missing", "dir", "iris.png"))
	assert.ErrorIs(t, err, model.IOErr)

}

func TestNew_UnknownColour(t *testing.T) {

	_, err := New(dataset(), Options{Palette: map[string]string{"setosa": "mauve"}})
	assert.ErrorIs(t, err, model.InvalidArgumentErr)

	_, err = Colour("Green")
	assert.NoError(t, err)

}
