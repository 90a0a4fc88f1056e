package trefle

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// flexString accepts a JSON string, number or boolean. Trefle reports some
// fields as numbers on one record and text on another.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

type searchResponse struct {
	Data []speciesHit `json:"data"`
}

type speciesHit struct {
	ID             int64  `json:"id"`
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	ImageURL       string `json:"image_url"`
	Family         string `json:"family"`
	Genus          string `json:"genus"`
}

func (h speciesHit) toSummary() adapter.SpeciesSummary {
	return adapter.SpeciesSummary{
		ExternalID:     h.ID,
		ScientificName: h.ScientificName,
		CommonName:     h.CommonName,
		ImageURL:       h.ImageURL,
		Family:         h.Family,
		Genus:          h.Genus,
	}
}

type plantResponse struct {
	Data *plantRecord `json:"data"`
}

type plantRecord struct {
	ID             int64       `json:"id"`
	CommonName     string      `json:"common_name"`
	ScientificName string      `json:"scientific_name"`
	ImageURL       string      `json:"image_url"`
	MainSpecies    mainSpecies `json:"main_species"`
}

type mainSpecies struct {
	Family         string         `json:"family"`
	Genus          string         `json:"genus"`
	Toxicity       *flexString    `json:"toxicity"`
	MaximumHeight  *measure       `json:"maximum_height"`
	Growth         growth         `json:"growth"`
	Specifications specifications `json:"specifications"`
}

type growth struct {
	SoilHumidity        *decimal.Decimal `json:"soil_humidity"`
	AtmosphericHumidity *decimal.Decimal `json:"atmospheric_humidity"`
	GrowthRate          flexString       `json:"growth_rate"`
	Light               flexString       `json:"light"`
	SoilTexture         flexString       `json:"soil_texture"`
	MaximumHeight       *measure         `json:"maximum_height"`
	MinimumTemperature  *temperature     `json:"minimum_temperature"`
}

type specifications struct {
	GrowthRate    flexString `json:"growth_rate"`
	MaximumHeight *measure   `json:"maximum_height"`
	AverageHeight *measure   `json:"average_height"`
}

type measure struct {
	CM *decimal.Decimal `json:"cm"`
	M  *decimal.Decimal `json:"m"`
}

type temperature struct {
	DegC *decimal.Decimal `json:"deg_c"`
}

func (m *measure) toHeight() *valueobject.Height {
	if m == nil {
		return nil
	}
	return &valueobject.Height{CM: m.CM, M: m.M}
}

// toAttributes flattens a plant record. Zero values count as missing data,
// the same as an absent field.
func (r *plantRecord) toAttributes() *valueobject.SpeciesAttributes {
	ms := r.MainSpecies
	attrs := &valueobject.SpeciesAttributes{
		ScientificName:         r.ScientificName,
		CommonName:             r.CommonName,
		ImageURL:               r.ImageURL,
		Family:                 ms.Family,
		Genus:                  ms.Genus,
		SoilHumidity:           positiveInt(ms.Growth.SoilHumidity),
		GrowthRate:             string(ms.Growth.GrowthRate),
		Light:                  nonZero(string(ms.Growth.Light)),
		SpecificationMaxHeight: ms.Specifications.MaximumHeight.toHeight(),
		SpeciesMaxHeight:       ms.MaximumHeight.toHeight(),
		GrowthMaxHeight:        ms.Growth.MaximumHeight.toHeight(),
		AverageHeight:          ms.Specifications.AverageHeight.toHeight(),
		AtmosphericHumidity:    positiveInt(ms.Growth.AtmosphericHumidity),
		SoilTexture:            string(ms.Growth.SoilTexture),
	}
	if attrs.GrowthRate == "" {
		attrs.GrowthRate = string(ms.Specifications.GrowthRate)
	}
	if t := ms.Growth.MinimumTemperature; t != nil && t.DegC != nil && !t.DegC.IsZero() {
		attrs.MinimumTemperatureC = t.DegC
	}
	if ms.Toxicity != nil && *ms.Toxicity != "" {
		tox := string(*ms.Toxicity)
		attrs.Toxicity = &tox
	}
	return attrs
}

func positiveInt(d *decimal.Decimal) *int {
	if d == nil || !d.IsPositive() {
		return nil
	}
	v := int(d.IntPart())
	return &v
}

func nonZero(s string) string {
	if strings.TrimSpace(s) == "0" {
		return ""
	}
	return s
}
