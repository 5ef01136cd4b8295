package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BundleLine is one constituent of a bundle being decomposed
type BundleLine struct {
	ProductID    uuid.UUID
	Quantity     int
	SellingPrice decimal.Decimal
}

// Allocation is the share of the bundle price assigned to one line
type Allocation struct {
	ProductID uuid.UUID
	Quantity  int
	LineTotal decimal.Decimal
}

// DecomposeBundle apportions a bundle's flat price across its constituent
// product lines for accounting. Each line's share is proportional to its
// reference value (selling price times quantity) over the bundle's total
// reference value; when the total reference value is zero the price is
// split equally. Shares are rounded to 2 decimal places and the rounding
// remainder is assigned to the last line, so the allocations always sum to
// exactly bundlePrice * bundleQty.
func DecomposeBundle(bundlePrice decimal.Decimal, bundleQty int, lines []BundleLine) []Allocation {
	if len(lines) == 0 || bundleQty <= 0 {
		return nil
	}

	target := bundlePrice.Mul(decimal.NewFromInt(int64(bundleQty)))

	totalRef := decimal.Zero
	refs := make([]decimal.Decimal, len(lines))
	for i, line := range lines {
		refs[i] = line.SellingPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		totalRef = totalRef.Add(refs[i])
	}

	allocations := make([]Allocation, len(lines))
	distributed := decimal.Zero
	for i, line := range lines {
		var share decimal.Decimal
		if i == len(lines)-1 {
			// Last line absorbs the rounding remainder.
			share = target.Sub(distributed)
		} else if totalRef.IsZero() {
			share = target.Div(decimal.NewFromInt(int64(len(lines)))).Round(2)
		} else {
			share = target.Mul(refs[i]).Div(totalRef).Round(2)
		}
		distributed = distributed.Add(share)
		allocations[i] = Allocation{
			ProductID: line.ProductID,
			Quantity:  line.Quantity * bundleQty,
			LineTotal: share,
		}
	}
	return allocations
}
