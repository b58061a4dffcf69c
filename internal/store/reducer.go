package store

// reduce applies a single action to the state and returns the next
// state. It is pure: the input state and its slices are never mutated
// in place, so a snapshot taken before a dispatch stays valid.
func reduce(s AppState, a Action) AppState {
	switch a := a.(type) {
	case SetUser:
		s.User = a.User

	case Logout:
		s.User = nil
		s.Cart = nil
		s.Orders = nil

	case AddToCart:
		s.Cart = mergeLine(s.Cart, a.Line)

	case RemoveFromCart:
		out := make([]CartLine, 0, len(s.Cart))
		for _, l := range s.Cart {
			if l.CartID != a.CartID {
				out = append(out, l)
			}
		}
		s.Cart = out

	case UpdateCartItem:
		out := make([]CartLine, len(s.Cart))
		copy(out, s.Cart)
		for i := range out {
			if out[i].CartID == a.CartID {
				out[i].Quantity = a.Quantity
			}
		}
		s.Cart = out

	case ClearCart:
		s.Cart = nil

	case AddOrder:
		orders := make([]Order, 0, len(s.Orders)+1)
		orders = append(orders, s.Orders...)
		s.Orders = append(orders, a.Order)
		s.Cart = nil

	case SetSearchTerm:
		s.SearchTerm = a.Term

	case SetFilterCategory:
		s.FilterCategory = a.Category

	case SetTheme:
		s.Theme = a.Theme
	}

	return s
}

// mergeLine enforces the one-line-per-(product, size) invariant: an
// existing match absorbs the added quantity and keeps its cart id,
// otherwise the line is appended as-is.
func mergeLine(cart []CartLine, line CartLine) []CartLine {
	for i, l := range cart {
		if l.ProductID == line.ProductID && l.Size == line.Size {
			out := make([]CartLine, len(cart))
			copy(out, cart)
			out[i].Quantity += line.Quantity
			return out
		}
	}

	out := make([]CartLine, 0, len(cart)+1)
	out = append(out, cart...)
	return append(out, line)
}
