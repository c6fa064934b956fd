package transform

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/is24"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/kyero"
)

// Transformer maps Kyero properties onto ImmoScout24 records. Mapping is
// deterministic for a given input; the logger only records skipped types and
// fallback substitutions.
type Transformer struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Transformer {
	return &Transformer{log: log}
}

// Map converts one property. The second return is false when the source type
// has no ImmoScout24 counterpart and the property must be skipped.
func (t *Transformer) Map(prop *kyero.Property) (*is24.RealEstate, bool) {
	srcType := strings.ToLower(strings.TrimSpace(prop.Type))
	targetType, ok := TypeMapping[srcType]
	if !ok {
		t.log.Warn("unsupported property type, skipping",
			zap.String("type", prop.Type),
			zap.String("ref", prop.Ref))
		return nil, false
	}

	rec := &is24.RealEstate{
		Type:       targetType,
		ExternalID: strings.TrimSpace(prop.Ref),
	}

	t.mapAddress(prop, rec)
	t.mapNotes(prop, rec, srcType)
	t.mapPrice(prop, rec)
	t.mapSurfaces(prop, rec)
	t.mapTypeSpecific(prop, rec, srcType)

	if prop.APISearchData != nil {
		rec.SearchField1 = prop.APISearchData.SearchField1
		rec.SearchField2 = prop.APISearchData.SearchField2
		rec.SearchField3 = prop.APISearchData.SearchField3
	}
	rec.GroupNumber = prop.GroupNumber

	return rec, true
}

func (t *Transformer) mapAddress(prop *kyero.Property, rec *is24.RealEstate) {
	town := capitalize(prop.Town)
	kind := capitalize(prop.Type)

	if town == "" {
		rec.Title = kind
		rec.Street = "Street"
	} else {
		rec.Title = fmt.Sprintf("%s in %s", kind, town)
		rec.Street = fmt.Sprintf("Street in %s", town)
	}

	rec.HouseNumber = defaultText(prop.HouseNumber, "0")
	rec.Postcode = trimPostcode(defaultText(prop.Postcode, "29000"))
	rec.City = prop.Town
	rec.Country = "ESP"

	province := strings.TrimSpace(prop.Province)
	if region, ok := RegionMapping[province]; ok {
		rec.Region = region
	} else {
		rec.Region = defaultText(province, "Unknown")
	}

	if prop.Location != nil {
		rec.Latitude = parseFloat(prop.Location.Latitude)
		rec.Longitude = parseFloat(prop.Location.Longitude)
	}
	rec.ShowAddress = parseBool(prop.ShowAddress, true)
}

func (t *Transformer) mapNotes(prop *kyero.Property, rec *is24.RealEstate, srcType string) {
	kind := capitalize(srcType)

	var text string
	if prop.Desc != nil {
		text = prop.Desc.En
	}
	if strings.TrimSpace(text) == "" {
		t.log.Warn("property has no description",
			zap.String("ref", rec.ExternalID))
		text = "No description provided"
	}

	description := CleanDescription(fmt.Sprintf("%s: %s", kind, text))
	first, overflow := SplitDescription(description)
	rec.DescriptionNote = first

	if prop.FurnishingNote != "" {
		rec.FurnishingNote = CleanDescription(prop.FurnishingNote)
	}
	if prop.LocationNote != "" {
		rec.LocationNote = CleanDescription(prop.LocationNote)
	}
	if prop.OtherNote != "" {
		rec.OtherNote = CleanDescription(prop.OtherNote)
	}
	if overflow != "" {
		if rec.OtherNote != "" {
			rec.OtherNote = overflow + "\n\n" + rec.OtherNote
		} else {
			rec.OtherNote = overflow
		}
	}
}

func (t *Transformer) mapPrice(prop *kyero.Property, rec *is24.RealEstate) {
	rec.Value = parseFloat(prop.Price)
	if strings.TrimSpace(prop.Price) != "" && rec.Value == nil {
		t.log.Warn("unparseable price",
			zap.String("ref", rec.ExternalID),
			zap.String("price", prop.Price))
	}
	rec.Currency = defaultText(prop.Currency, "EUR")
	rec.MarketingType = defaultText(prop.MarketingType, "PURCHASE")

	rec.HasCourtage = "NOT_APPLICABLE"
	if prop.Courtage != nil {
		rec.HasCourtage = defaultText(prop.Courtage.HasCourtage, "NOT_APPLICABLE")
		rec.Courtage = prop.Courtage.Courtage
		if prop.Courtage.CourtageNote != "" {
			rec.CourtageNote = CleanDescription(prop.Courtage.CourtageNote)
		}
	}
}

func (t *Transformer) mapSurfaces(prop *kyero.Property, rec *is24.RealEstate) {
	if prop.SurfaceArea == nil {
		// The feed gave no surface block at all; the plot is reported as
		// zero rather than missing, as these listings still carry a price.
		zero := 0.0
		rec.PlotArea = &zero
		rec.TotalFloorSpace = &zero
		rec.NetFloorSpace = &zero
		return
	}

	rec.LivingSpace = parseFloat(prop.SurfaceArea.Built)
	rec.PlotArea = parseFloat(prop.SurfaceArea.Plot)
	rec.TotalFloorSpace = parseFloat(prop.SurfaceArea.Total)
	if rec.TotalFloorSpace == nil {
		rec.TotalFloorSpace = rec.PlotArea
	}
	rec.NetFloorSpace = parseFloat(prop.SurfaceArea.Net)
	if rec.NetFloorSpace == nil {
		rec.NetFloorSpace = rec.PlotArea
	}
}

func (t *Transformer) mapTypeSpecific(prop *kyero.Property, rec *is24.RealEstate, srcType string) {
	switch rec.Type {
	case is24.TypeHouseBuy:
		rec.BuildingType = buildType(srcType)
	case is24.TypeApartmentBuy:
		rec.ApartmentType = buildType(srcType)
	case is24.TypeLivingBuySite:
		rec.CommercializationType = "BUY"
	case is24.TypeTradeSite:
		rec.CommercializationType = t.normalizeEnum(rec.ExternalID, "commercializationType",
			defaultText(prop.CommercializationType, "BUY"), validCommercializationType, "BUY")
		rec.UtilizationTradeSite = t.normalizeEnum(rec.ExternalID, "utilizationTradeSite",
			defaultText(prop.UtilizationTradeSite, "LEISURE"), validUtilizationTradeSite, "NO_INFORMATION")

		use, ok := RecommendedUseMapping[srcType]
		if !ok {
			use = "NO_INFORMATION"
		}
		rec.RecommendedUseTypes = []string{use}

		rec.Tenancy = prop.Tenancy
		rec.MinDivisible = parseFloat(prop.MinDivisible)
		rec.FreeFrom = prop.FreeFrom
		rec.ShortTermConstructible = parseBool(prop.ShortTermConstructible, false)
		rec.BuildingPermission = parseBool(prop.BuildingPermission, false)
		rec.Demolition = parseBool(prop.Demolition, false)
		rec.SiteDevelopmentType = defaultText(prop.SiteDevelopmentType, "NO_INFORMATION")
		rec.SiteConstructibleType = defaultText(prop.SiteConstructibleType, "NO_INFORMATION")
		rec.Grz = parseFloat(prop.Grz)
		rec.Gfz = parseFloat(prop.Gfz)
		rec.LeaseInterval = defaultText(prop.LeaseInterval, "NO_INFORMATION")
	}

	// Room counts only apply to residential listings.
	if rec.Type == is24.TypeHouseBuy || rec.Type == is24.TypeApartmentBuy {
		rec.NumberOfBedRooms = strings.TrimSpace(prop.Beds)
		rec.NumberOfBathRooms = strings.TrimSpace(prop.Baths)
		rec.NumberOfRooms = atoiOrZero(rec.NumberOfBedRooms) + atoiOrZero(rec.NumberOfBathRooms)
	}
}

func (t *Transformer) normalizeEnum(ref, field, value string, valid map[string]bool, fallback string) string {
	if valid[value] {
		return value
	}
	t.log.Warn("invalid enum value, substituting fallback",
		zap.String("ref", ref),
		zap.String("field", field),
		zap.String("value", value),
		zap.String("fallback", fallback))
	return fallback
}

func buildType(srcType string) string {
	if bt, ok := BuildMapping[srcType]; ok {
		return bt
	}
	return "NO_INFORMATION"
}

// trimPostcode drops a trailing country suffix, e.g. "29000 ESP" -> "29000".
func trimPostcode(postcode string) string {
	if i := strings.IndexByte(postcode, ' '); i >= 0 {
		return postcode[:i]
	}
	return postcode
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func defaultText(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseBool(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
