package catalog

import (
	"strings"

	"github.com/macmobile/carwash/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	fallbackPrice    = 75
	fallbackDuration = "60 mins"
	fallbackFeature  = "Professional car wash service"
)

// Group is a named section of the catalog, e.g. monthly packages.
type Group struct {
	Key      string                     `json:"key"`
	Name     string                     `json:"name"`
	Services []domain.ServiceDefinition `json:"services"`
}

// Catalog is an immutable set of service definitions. Build it once with New
// and share it; neither Lookup nor Groups hands out references to its internals.
type Catalog struct {
	groups []Group
}

func New(groups []Group) *Catalog {
	return &Catalog{groups: cloneGroups(groups)}
}

// Lookup returns the definition for code. Codes are searched group by group
// and the first match wins. An unknown code yields a synthesized fallback, so
// the second return value only reports whether the code was found.
func (c *Catalog) Lookup(code string) (domain.ServiceDefinition, bool) {
	for _, g := range c.groups {
		for _, s := range g.Services {
			if s.Code == code {
				return cloneService(s), true
			}
		}
	}
	return Fallback(code), false
}

// Groups returns a copy of the catalog in display order.
func (c *Catalog) Groups() []Group {
	return cloneGroups(c.groups)
}

// Len is the number of catalog entries across all groups.
func (c *Catalog) Len() int {
	n := 0
	for _, g := range c.groups {
		n += len(g.Services)
	}
	return n
}

// Fallback builds the definition used for codes missing from the catalog.
func Fallback(code string) domain.ServiceDefinition {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(code)
	return domain.ServiceDefinition{
		Code:     code,
		Name:     cases.Title(language.Und).String(name),
		Price:    fallbackPrice,
		Duration: fallbackDuration,
		Category: domain.CategoryCustomService,
		Features: []string{fallbackFeature},
	}
}

func cloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		services := make([]domain.ServiceDefinition, len(g.Services))
		for j, s := range g.Services {
			services[j] = cloneService(s)
		}
		out[i] = Group{Key: g.Key, Name: g.Name, Services: services}
	}
	return out
}

func cloneService(s domain.ServiceDefinition) domain.ServiceDefinition {
	s.Features = append([]string(nil), s.Features...)
	if s.Savings != nil {
		v := *s.Savings
		s.Savings = &v
	}
	return s
}
