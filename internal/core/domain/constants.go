package domain

// Side selects one of the two curves of a market. All curve-indexed state is
// read and written through Market.Reserves(side) so the index convention
// lives in a single place.
type Side int

const (
	// SideYes is the YES-token curve.
	SideYes Side = iota
	// SideNo is the NO-token curve.
	SideNo
)

// Other returns the opposite curve. The cross-curve shift always targets
// Other() of the traded side.
func (s Side) Other() Side {
	if s == SideYes {
		return SideNo
	}
	return SideYes
}

func (s Side) String() string {
	if s == SideYes {
		return "yes"
	}
	return "no"
}

// Validate returns an error for sides outside the YES/NO pair.
func (s Side) Validate() error {
	if s != SideYes && s != SideNo {
		return ErrInvalidSide
	}
	return nil
}

const (
	// LamportDecimals is the fixed-point precision of the native currency.
	LamportDecimals uint32 = 9

	// MarketTypeMintPair tags markets whose id derives from the mint pair.
	MarketTypeMintPair uint8 = 0
	// MarketTypeInfoLabel tags markets whose id derives from the info label.
	MarketTypeInfoLabel uint8 = 1
)
