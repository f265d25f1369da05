package enum

// Capability names a single engine operation a caller may be granted.
type Capability string

const (
	CapViewSales    Capability = "view-sales"
	CapEditSales    Capability = "edit-sales"
	CapViewPurchase Capability = "view-purchase"
	CapEditPurchase Capability = "edit-purchase"
	CapManageUsers  Capability = "manage-users"
)

// Capabilities is the typed permission token carried from the auth layer
// into the reconciliation engine. The zero value grants nothing.
type Capabilities map[Capability]bool

// NewCapabilities builds a token from a list of granted capability names.
func NewCapabilities(granted ...Capability) Capabilities {
	caps := make(Capabilities, len(granted))
	for _, c := range granted {
		caps[c] = true
	}
	return caps
}

// Has reports whether the token grants the given capability.
func (c Capabilities) Has(cap Capability) bool {
	return c[cap]
}

// Names returns the granted capability names, for embedding in token claims.
func (c Capabilities) Names() []string {
	names := make([]string, 0, len(c))
	for cap, ok := range c {
		if ok {
			names = append(names, string(cap))
		}
	}
	return names
}

// FromNames rebuilds a token from claim strings.
func FromNames(names []string) Capabilities {
	caps := make(Capabilities, len(names))
	for _, n := range names {
		caps[Capability(n)] = true
	}
	return caps
}

// AllCapabilities returns every known capability, used when seeding the
// first administrator.
func AllCapabilities() Capabilities {
	return NewCapabilities(CapViewSales, CapEditSales, CapViewPurchase, CapEditPurchase, CapManageUsers)
}
