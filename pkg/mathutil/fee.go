package mathutil

// TenThousands is the basis-point denominator.
var TenThousands = uint64(10000)

// BpsFee calculates the fee cut of an amount given a fee expressed in basis
// points (ie. 1% = 100). The result is floor(amount * feeAsBasisPoint / 10000)
// computed with a widened intermediate.
func BpsFee(amount, feeAsBasisPoint uint64) (uint64, error) {
	return MulDiv(amount, feeAsBasisPoint, TenThousands)
}

// LessFee returns the amount with the given basis-point fee subtracted, along
// with the calculated fee.
func LessFee(amount, feeAsBasisPoint uint64) (withoutFee, calculatedFee uint64, err error) {
	calculatedFee, err = BpsFee(amount, feeAsBasisPoint)
	if err != nil {
		return
	}
	withoutFee, err = CheckedSub(amount, calculatedFee)
	return
}
