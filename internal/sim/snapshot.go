package sim

import (
	"encoding/binary"
	"hash/fnv"
)

// StateType names the coarse session state.
type StateType string

const (
	StatePaused   StateType = "paused"
	StateRunning  StateType = "running"
	StateTooSmall StateType = "paused_small_window"
)

// Snapshot captures the session for determinism testing.
type Snapshot struct {
	Tick          uint64
	Generation    int
	Population    int
	Peak          int
	Initial       int
	BoardW        int
	BoardH        int
	GenEveryTicks int
	IntervalMS    int
	Eraser        bool
	Toast         string
	State         StateType
	LiveHash      uint64 // FNV-1a over the sorted live cells
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePaused
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.running:
		state = StateRunning
	}

	s := Snapshot{
		Tick:          g.tick,
		Generation:    g.generation,
		Peak:          g.peak,
		Initial:       g.initial,
		GenEveryTicks: g.genEveryTicks,
		IntervalMS:    g.cfg.Simulation.IntervalMS,
		Eraser:        g.eraser,
		Toast:         g.toast,
		State:         state,
	}
	if g.grid != nil {
		b := g.grid.Bounds()
		s.BoardW, s.BoardH = b.W, b.H
		s.Population = g.grid.Population()
		s.LiveHash = hashCells(g)
	}
	return s
}

// hashCells feeds each live cell as two big-endian uint32 words, in sorted
// order, through 64-bit FNV-1a.
func hashCells(g *Game) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, 8)
	for _, c := range g.grid.Cells() {
		buf = binary.BigEndian.AppendUint32(buf[:0], uint32(c.X))
		buf = binary.BigEndian.AppendUint32(buf, uint32(c.Y))
		h.Write(buf)
	}
	return h.Sum64()
}
