package units

// Kind classifies a quantity by its physical dimension.
type Kind string

const (
	KindUnitless     Kind = "unitless"
	KindMass         Kind = "mass"
	KindLength       Kind = "length"
	KindArea         Kind = "area"
	KindVolume       Kind = "volume"
	KindTime         Kind = "time"
	KindFrequency    Kind = "frequency"
	KindVelocity     Kind = "velocity"
	KindAcceleration Kind = "acceleration"
	KindForce        Kind = "force"
	KindEnergy       Kind = "energy"
	KindPower        Kind = "power"
	KindAction       Kind = "action"
	KindOther        Kind = "other"
)

var kindDims = map[Kind]Dimension{
	KindUnitless:     {},
	KindMass:         {Mass: 1},
	KindLength:       {Length: 1},
	KindArea:         {Length: 2},
	KindVolume:       {Length: 3},
	KindTime:         {Time: 1},
	KindFrequency:    {Time: -1},
	KindVelocity:     {Length: 1, Time: -1},
	KindAcceleration: {Length: 1, Time: -2},
	KindForce:        {Mass: 1, Length: 1, Time: -2},
	KindEnergy:       {Mass: 1, Length: 2, Time: -2},
	KindPower:        {Mass: 1, Length: 2, Time: -3},
	KindAction:       {Mass: 1, Length: 2, Time: -1},
}

var dimKinds = func() map[Dimension]Kind {
	m := make(map[Dimension]Kind, len(kindDims))
	for k, d := range kindDims {
		m[d] = k
	}
	return m
}()

// KindOf classifies d. Dimensions without a name report KindOther.
func KindOf(d Dimension) Kind {
	if k, ok := dimKinds[d]; ok {
		return k
	}
	return KindOther
}

// Dimension returns the dimension a named kind stands for.
func (k Kind) Dimension() (Dimension, bool) {
	d, ok := kindDims[k]
	return d, ok
}

func (k Kind) String() string { return string(k) }
