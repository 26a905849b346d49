package company

import "strings"

type Company struct {
	id      string
	name    string
	address string
	taxID   string
}

func New(name, address, taxID string) Company {
	return Company{
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		taxID:   strings.TrimSpace(taxID),
	}
}

func Hydrate(id, name, address, taxID string) Company {
	return Company{
		id:      id,
		name:    strings.TrimSpace(name),
		address: strings.TrimSpace(address),
		taxID:   strings.TrimSpace(taxID),
	}
}

func (c Company) ID() string      { return c.id }
func (c Company) Name() string    { return c.name }
func (c Company) Address() string { return c.address }
func (c Company) TaxID() string   { return c.taxID }
func (c Company) ItemID() string  { return c.id }
