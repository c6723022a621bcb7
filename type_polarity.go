package polestock

import (
	"encoding/json"
	"fmt"
)

// Polarity is the number of pole positions of an assembly.
// The zero value means "not set".
type Polarity int

const (
	TwoPole   Polarity = 2
	ThreePole Polarity = 3
	FourPole  Polarity = 4
)

// Polarities lists the valid polarities in display order.
var Polarities = []Polarity{TwoPole, ThreePole, FourPole}

// Positions returns the number of pole positions, the leading digit of the label.
func (p Polarity) Positions() int { return int(p) }

// IsValid reports whether p is one of the known polarities.
func (p Polarity) IsValid() bool { return p >= TwoPole && p <= FourPole }

func (p Polarity) String() string {
	if !p.IsValid() {
		return ""
	}
	return fmt.Sprintf("%d-Pole", int(p))
}

// ParsePolarity parses a polarity label such as "3-Pole".
func ParsePolarity(s string) (Polarity, error) {
	for _, p := range Polarities {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown polarity %q, want one of 2-Pole, 3-Pole, 4-Pole", s)
}

func (p Polarity) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Polarity) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*p = 0
		return nil
	}
	v, err := ParsePolarity(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
