package booking

// Summary is the derived quote for a selection. It is recomputed on every
// read and never persisted as a source of truth.
type Summary struct {
	Subtotal   Money `json:"subtotal"`
	Discount   Money `json:"discount"`
	ServiceFee Money `json:"service_fee"`
	Total      Money `json:"total"`
}

// Quote prices a selection snapshot. Pure: no clock, no storage, no network.
//
//	subtotal = base + bedrooms*bedroomPrice + bathrooms*bathroomPrice + sum(extras)
//	discount = subtotal * frequencyPercent / 100
//	total    = subtotal - discount + serviceFee
//
// Without a selected service every field is zero, including the fee.
func Quote(sel Selection, serviceFee Money) Summary {
	if sel.Service == nil {
		return Summary{}
	}

	subtotal := sel.Service.BasePrice.
		Add(sel.Service.BedroomPrice.MulQty(sel.Bedrooms)).
		Add(sel.Service.BathroomPrice.MulQty(sel.Bathrooms))
	for _, e := range sel.Extras {
		subtotal = subtotal.Add(e.Price.MulQty(e.Quantity))
	}

	discount := subtotal.Percent(sel.Frequency.DiscountPercent())

	return Summary{
		Subtotal:   subtotal,
		Discount:   discount,
		ServiceFee: serviceFee,
		Total:      subtotal.Sub(discount).Add(serviceFee),
	}
}
