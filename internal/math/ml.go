package math

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
)

// Network defines a feed forward ml network.
type Network struct {
	net *ff.Network
}

// NewML creates a tanh network with a softmax output,
// mapping inputs features to a distribution over outputs classes.
func NewML(inputs, outputs int) *Network {
	rate := ml.Learn(0.1, 0.1)

	initW := xmath.Rand(0, 1, math.Sqrt)
	initB := xmath.Rand(0, 1, math.Sqrt)

	layer := func() net.NeuronFactory {
		return net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)
	}

	network := ff.New(inputs, outputs).
		Add(10*inputs, layer()).
		Add(3*outputs, layer()).
		Add(outputs, layer()).
		Add(outputs, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(ml.Pow)

	return &Network{net: network}
}

// Train digests one sample and returns the norm of the loss.
func (n *Network) Train(in, out []float64) float64 {

	inp := xmath.Vec(len(in)).With(in...)

	loss, _ := n.net.Train(inp, xmath.Vec(len(out)).With(out...))

	return loss.Norm()
}

// Predict returns the predicted output.
func (n *Network) Predict(in []float64) []float64 {

	inp := xmath.Vec(len(in)).With(in...)

	return n.net.Predict(inp)
}

// OneHot encodes class index i out of n classes.
func OneHot(i, n int) []float64 {
	v := make([]float64, n)
	if i >= 0 && i < n {
		v[i] = 1
	}
	return v
}

// ArgMax returns the index of the largest value, or -1 for an empty slice.
func ArgMax(v []float64) int {
	best := -1
	for i, x := range v {
		if best < 0 || x > v[best] {
			best = i
		}
	}
	return best
}
