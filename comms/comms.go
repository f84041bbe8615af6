// Package comms provides the signal-processing pipeline behind the qpsk
// builtin: a node graph, a QPSK modulator with root-raised-cosine pulse
// shaping, and a printer sink.
package comms

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	numTaps   = 32
	samPerSym = 2.0
	rolloff   = 0.25
	burstBits = 4096
)

// Node is one stage of a signal graph. Source nodes ignore their input.
type Node interface {
	Run(input []complex128) ([]complex128, error)
}

// Graph is an ordered pipeline of nodes.
type Graph struct {
	nodes []Node
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode appends n to the pipeline.
func (g *Graph) AddNode(n Node) {
	g.nodes = append(g.nodes, n)
}

// Len returns the number of nodes in the pipeline.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Run feeds each node's output to the next node and returns the final
// burst.
func (g *Graph) Run() ([]complex128, error) {
	var data []complex128
	for _, n := range g.nodes {
		var err error
		data, err = n.Run(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// QPSKMod is a source node producing root-raised-cosine filtered QPSK
// bursts from random bits. Filter state persists across bursts so
// consecutive bursts are continuous.
type QPSKMod struct {
	taps  []complex128
	state []complex128
	bits  distuv.Bernoulli
}

// NewQPSKMod returns a modulator with 32 RRC taps at 2 samples per symbol
// and rolloff 0.25.
func NewQPSKMod() (*QPSKMod, error) {
	taps, err := RRCTaps(numTaps, samPerSym, rolloff)
	if err != nil {
		return nil, err
	}
	return &QPSKMod{
		taps:  taps,
		state: make([]complex128, numTaps),
		bits:  distuv.Bernoulli{P: 0.5},
	}, nil
}

// Run draws 4096 random bits, maps bit pairs onto unit-energy QPSK
// symbols, writes a symbol into every fourth slot of an 8192-sample
// buffer, and applies the pulse-shaping filter. The input burst is
// ignored.
func (m *QPSKMod) Run(_ []complex128) ([]complex128, error) {
	bits := make([]float64, burstBits)
	for i := range bits {
		bits[i] = m.bits.Rand()
	}
	syms := make([]complex128, 0, burstBits/2)
	for i := 0; i+1 < len(bits); i += 2 {
		s := complex(2*bits[i]-1, 2*bits[i+1]-1)
		syms = append(syms, s*complex(math.Sqrt2/2, 0))
	}
	upsample := make([]complex128, burstBits*2)
	ix := 0
	for _, s := range syms {
		upsample[ix] = s
		ix += 4
	}
	return BatchFIR(upsample, m.taps, m.state), nil
}

// PrinterNode writes every burst it receives to w and passes the burst
// through unchanged.
type PrinterNode struct {
	w io.Writer
}

// NewPrinterNode returns a printer writing to w, or to stdout when w is
// nil.
func NewPrinterNode(w io.Writer) *PrinterNode {
	if w == nil {
		w = os.Stdout
	}
	return &PrinterNode{w: w}
}

// Run implements Node.
func (p *PrinterNode) Run(input []complex128) ([]complex128, error) {
	fmt.Fprintln(p.w, input)
	return input, nil
}

// RRCTaps returns n root-raised-cosine filter taps for the given samples
// per symbol and rolloff beta in (0, 1].
func RRCTaps(n int, samPerSym, beta float64) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("rrc taps: tap count is not positive: %d", n)
	}
	if samPerSym <= 0 {
		return nil, fmt.Errorf("rrc taps: samples per symbol is not positive: %g", samPerSym)
	}
	if beta <= 0 || beta > 1 {
		return nil, fmt.Errorf("rrc taps: rolloff is outside (0, 1]: %g", beta)
	}
	taps := make([]complex128, n)
	for i := range taps {
		t := (float64(i) - float64(n)/2) / samPerSym
		taps[i] = complex(rrc(t, beta), 0)
	}
	return taps, nil
}

// rrc is the root-raised-cosine impulse response at an offset of t
// symbols, with the removable singularities at t = 0 and |t| = 1/(4*beta)
// handled explicitly.
func rrc(t, beta float64) float64 {
	const eps = 1e-9
	if math.Abs(t) < eps {
		return 1 - beta + 4*beta/math.Pi
	}
	if math.Abs(math.Abs(t)-1/(4*beta)) < eps {
		return beta / math.Sqrt2 * ((1+2/math.Pi)*math.Sin(math.Pi/(4*beta)) +
			(1-2/math.Pi)*math.Cos(math.Pi/(4*beta)))
	}
	return (math.Sin(math.Pi*t*(1-beta)) + 4*beta*t*math.Cos(math.Pi*t*(1+beta))) /
		(math.Pi * t * (1 - 16*beta*beta*t*t))
}

// BatchFIR filters input with taps, carrying state between calls. state
// holds the most recent input samples, newest first, and must be as long
// as taps.
func BatchFIR(input, taps, state []complex128) []complex128 {
	out := make([]complex128, len(input))
	for n := range input {
		copy(state[1:], state[:len(state)-1])
		state[0] = input[n]
		var acc complex128
		for k, tap := range taps {
			acc += tap * state[k]
		}
		out[n] = acc
	}
	return out
}
