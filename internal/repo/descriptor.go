package repo

import "github.com/dokushohq/extensions/internal/config"

// Descriptor is the content of repo.json
type Descriptor struct {
	Meta DescriptorMeta `json:"meta"`
}

type DescriptorMeta struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

func NewDescriptor(r config.Repository) *Descriptor {
	return &Descriptor{
		Meta: DescriptorMeta{
			Name:    r.Name,
			Website: r.Website,
		},
	}
}
