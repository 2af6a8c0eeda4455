package taxienv

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/taxirelay/gridmap"
)

// TaxiState is the serializable view of one taxi.
type TaxiState struct {
	Row  int `json:"row"`
	Col  int `json:"col"`
	Fuel int `json:"fuel"`
}

// PassengerState is the serializable view of one passenger.
// Carrier is -1 while the passenger is on the ground.
type PassengerState struct {
	Row       int  `json:"row"`
	Col       int  `json:"col"`
	DestRow   int  `json:"dest_row"`
	DestCol   int  `json:"dest_col"`
	Carrier   int  `json:"carrier"`
	Delivered bool `json:"delivered"`
}

// Snapshot is a point-in-time copy of the simulation state, shaped for
// JSON transport to monitoring clients.
type Snapshot struct {
	Step       int              `json:"step"`
	Taxis      []TaxiState      `json:"taxis"`
	Passengers []PassengerState `json:"passengers"`
}

// Snapshot captures the current state. The result shares nothing with the
// simulation and stays valid across later steps.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Step:       s.steps,
		Taxis:      make([]TaxiState, len(s.taxis)),
		Passengers: make([]PassengerState, len(s.passengers)),
	}
	for i, t := range s.taxis {
		snap.Taxis[i] = TaxiState{Row: t.loc.Row, Col: t.loc.Col, Fuel: t.fuel}
	}
	for i := range s.passengers {
		p := s.passengers[i]
		loc := s.PassengerLocation(i)
		snap.Passengers[i] = PassengerState{
			Row:       loc.Row,
			Col:       loc.Col,
			DestRow:   p.dest.Row,
			DestCol:   p.dest.Col,
			Carrier:   p.carrier,
			Delivered: p.delivered,
		}
	}

	return snap
}

// Render returns a human-readable frame: the map with destinations marked
// 'D', waiting passengers 'P' and taxis as digits, followed by one status
// line per taxi and per passenger.
func (s *Sim) Render() string {
	lines := make([][]byte, len(s.desc))
	for i, line := range s.desc {
		lines[i] = []byte(line)
	}
	mark := func(at gridmap.Cell, b byte) {
		lines[at.Row+1][2*at.Col+1] = b
	}
	for i := range s.passengers {
		p := s.passengers[i]
		mark(p.dest, 'D')
		if p.carrier == noCarrier && !p.delivered {
			mark(p.loc, 'P')
		}
	}
	for i, t := range s.taxis {
		mark(t.loc, byte('1'+i%9))
	}

	var b strings.Builder
	for _, line := range lines {
		b.Write(line)
		b.WriteByte('\n')
	}
	for i, t := range s.taxis {
		fmt.Fprintf(&b, "taxi %d: fuel=%d at %v\n", i, t.fuel, t.loc)
	}
	for i := range s.passengers {
		p := s.passengers[i]
		switch {
		case p.delivered:
			fmt.Fprintf(&b, "passenger %d: delivered at %v\n", i, p.loc)
		case p.carrier != noCarrier:
			fmt.Fprintf(&b, "passenger %d: riding taxi %d, heading %v\n", i, p.carrier, p.dest)
		default:
			fmt.Fprintf(&b, "passenger %d: waiting at %v, heading %v\n", i, p.loc, p.dest)
		}
	}

	return b.String()
}
