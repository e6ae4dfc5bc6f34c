package payment

// Charge is the gateway's record of a captured payment. Amount is in the
// currency's minor unit.
type Charge struct {
	ID     string
	Amount uint
}

// Gateway turns a client-side payment token into money. Implementations must
// return an error on decline or invalid token and never capture partially.
type Gateway interface {
	Charge(amount uint, currency string, source string) (*Charge, error)
}
