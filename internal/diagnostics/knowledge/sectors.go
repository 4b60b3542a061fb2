package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSector is returned when a business type is not a known sector.
var ErrInvalidSector = errors.New("invalid sector")

// Sector is a business vertical.
type Sector string

const (
	SectorRestaurant           Sector = "restaurant"
	SectorTechnicalService     Sector = "technical-service"
	SectorWorkshop             Sector = "workshop"
	SectorFactory              Sector = "factory"
	SectorRetail               Sector = "retail"
	SectorProfessionalServices Sector = "professional-services"
	SectorOther                Sector = "other"
)

// SectorInfo describes a sector for listings.
type SectorInfo struct {
	ID    Sector `json:"id"`
	Label string `json:"label"`
}

var sectorOrder = []SectorInfo{
	{ID: SectorRestaurant, Label: "Restaurant or food service"},
	{ID: SectorTechnicalService, Label: "Technical service"},
	{ID: SectorWorkshop, Label: "Workshop"},
	{ID: SectorFactory, Label: "Factory or manufacturing"},
	{ID: SectorRetail, Label: "Retail store"},
	{ID: SectorProfessionalServices, Label: "Professional services"},
	{ID: SectorOther, Label: "Other business"},
}

// sectorAliases maps common free-form spellings to a sector.
var sectorAliases = map[string]Sector{
	"restaurant":              SectorRestaurant,
	"restaurante":             SectorRestaurant,
	"food-service":            SectorRestaurant,
	"technical-service":       SectorTechnicalService,
	"servicio-tecnico":        SectorTechnicalService,
	"workshop":                SectorWorkshop,
	"taller":                  SectorWorkshop,
	"factory":                 SectorFactory,
	"fabrica":                 SectorFactory,
	"manufacturing":           SectorFactory,
	"retail":                  SectorRetail,
	"comercio":                SectorRetail,
	"store":                   SectorRetail,
	"professional-services":   SectorProfessionalServices,
	"servicios-profesionales": SectorProfessionalServices,
	"other":                   SectorOther,
	"otro":                    SectorOther,
}

// ParseSector normalizes a raw business type into a Sector.
func ParseSector(raw string) (Sector, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.Join(strings.FieldsFunc(key, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	}), "-")
	if key == "" {
		return "", fmt.Errorf("%w: business type is required", ErrInvalidSector)
	}
	if s, ok := sectorAliases[key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSector, raw)
}

// Label returns the human readable sector name.
func (s Sector) Label() string {
	for _, info := range sectorOrder {
		if info.ID == s {
			return info.Label
		}
	}
	return string(s)
}

// Valid reports whether s is a declared sector.
func (s Sector) Valid() bool {
	for _, info := range sectorOrder {
		if info.ID == s {
			return true
		}
	}
	return false
}
