package department

import "strings"

type Department struct {
	id          string
	name        string
	description string
}

func New(name, description string) Department {
	return Department{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
	}
}

func Hydrate(id, name, description string) Department {
	return Department{
		id:          id,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
	}
}

func (d Department) ID() string          { return d.id }
func (d Department) Name() string        { return d.name }
func (d Department) Description() string { return d.description }
func (d Department) IsZero() bool        { return d.id == "" && d.name == "" }

// ItemID satisfies the list engine's item contract.
func (d Department) ItemID() string { return d.id }
