package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/is24"
	"github.com/RubenBarrionuevo/kyero2is24/pkg/kyero"
)

func villaProperty() *kyero.Property {
	return &kyero.Property{
		ID:       "P1",
		Ref:      "REF-1",
		Type:     "villa",
		Town:     "marbella",
		Province: "Málaga",
		Postcode: "29600",
		Price:    "450000",
		Currency: "EUR",
		Beds:     "3",
		Baths:    "2",
		Location: &kyero.Location{Latitude: "36.51", Longitude: "-4.88"},
		SurfaceArea: &kyero.SurfaceArea{
			Built: "180",
			Plot:  "600",
		},
		Desc: &kyero.Description{En: "Lovely villa with sea views."},
	}
}

func TestMap_TypeMapping(t *testing.T) {
	tr := New(zap.NewNop())

	tests := []struct {
		srcType string
		want    string
	}{
		{"villa", is24.TypeHouseBuy},
		{"Villa", is24.TypeHouseBuy},
		{"  townhouse ", is24.TypeHouseBuy},
		{"apartment", is24.TypeApartmentBuy},
		{"penthouse", is24.TypeApartmentBuy},
		{"studio", is24.TypeApartmentBuy},
		{"land", is24.TypeLivingBuySite},
		{"farm", is24.TypeLivingBuySite},
		{"restaurant", is24.TypeTradeSite},
		{"office", is24.TypeTradeSite},
	}

	for _, tt := range tests {
		t.Run(tt.srcType, func(t *testing.T) {
			prop := villaProperty()
			prop.Type = tt.srcType

			rec, ok := tr.Map(prop)
			require.True(t, ok)
			assert.Equal(t, tt.want, rec.Type)
		})
	}
}

func TestMap_UnsupportedTypeSkipped(t *testing.T) {
	tr := New(zap.NewNop())

	for _, srcType := range []string{"", "castle", "igloo"} {
		prop := villaProperty()
		prop.Type = srcType

		rec, ok := tr.Map(prop)
		assert.False(t, ok)
		assert.Nil(t, rec)
	}
}

func TestMap_TitleAndAddress(t *testing.T) {
	tr := New(zap.NewNop())

	rec, ok := tr.Map(villaProperty())
	require.True(t, ok)

	assert.Equal(t, "REF-1", rec.ExternalID)
	assert.Equal(t, "Villa in Marbella", rec.Title)
	assert.Equal(t, "Street in Marbella", rec.Street)
	assert.Equal(t, "0", rec.HouseNumber)
	assert.Equal(t, "29600", rec.Postcode)
	assert.Equal(t, "marbella", rec.City)
	assert.Equal(t, "ESP", rec.Country)
	assert.Equal(t, "Andalusien", rec.Region)
	require.NotNil(t, rec.Latitude)
	assert.InDelta(t, 36.51, *rec.Latitude, 0.001)
	assert.True(t, rec.ShowAddress)
}

func TestMap_PostcodeSuffixStripped(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Postcode = "29000 ESP"

	rec, _ := tr.Map(prop)
	assert.Equal(t, "29000", rec.Postcode)
}

func TestMap_PostcodeDefault(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Postcode = ""

	rec, _ := tr.Map(prop)
	assert.Equal(t, "29000", rec.Postcode)
}

func TestMap_UnknownProvincePassedThrough(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Province = "Granada"
	rec, _ := tr.Map(prop)
	assert.Equal(t, "Granada", rec.Region)

	prop.Province = ""
	rec, _ = tr.Map(prop)
	assert.Equal(t, "Unknown", rec.Region)
}

func TestMap_PriceAndDefaults(t *testing.T) {
	tr := New(zap.NewNop())

	rec, _ := tr.Map(villaProperty())
	require.NotNil(t, rec.Value)
	assert.Equal(t, 450000.0, *rec.Value)
	assert.Equal(t, "EUR", rec.Currency)
	assert.Equal(t, "PURCHASE", rec.MarketingType)
	assert.Equal(t, "NOT_APPLICABLE", rec.HasCourtage)
}

func TestMap_MissingPrice(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Price = ""

	rec, _ := tr.Map(prop)
	assert.Nil(t, rec.Value)
}

func TestMap_UnparseablePrice(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Price = "lots"

	rec, _ := tr.Map(prop)
	assert.Nil(t, rec.Value)
}

func TestMap_Rooms(t *testing.T) {
	tr := New(zap.NewNop())

	rec, _ := tr.Map(villaProperty())
	assert.Equal(t, "3", rec.NumberOfBedRooms)
	assert.Equal(t, "2", rec.NumberOfBathRooms)
	assert.Equal(t, 5, rec.NumberOfRooms)

	prop := villaProperty()
	prop.Beds = "three"
	rec, _ = tr.Map(prop)
	assert.Equal(t, 2, rec.NumberOfRooms)
}

func TestMap_RoomsOnlyForResidential(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Type = "restaurant"

	rec, _ := tr.Map(prop)
	assert.Empty(t, rec.NumberOfBedRooms)
	assert.Empty(t, rec.NumberOfBathRooms)
	assert.Zero(t, rec.NumberOfRooms)
}

func TestMap_BuildingType(t *testing.T) {
	tr := New(zap.NewNop())

	rec, _ := tr.Map(villaProperty())
	assert.Equal(t, "VILLA", rec.BuildingType)
	assert.Empty(t, rec.ApartmentType)

	prop := villaProperty()
	prop.Type = "studio"
	rec, _ = tr.Map(prop)
	assert.Equal(t, "STUDIO", rec.ApartmentType)
	assert.Empty(t, rec.BuildingType)

	prop.Type = "ruin"
	rec, _ = tr.Map(prop)
	assert.Equal(t, "NO_INFORMATION", rec.BuildingType)
}

func TestMap_Surfaces(t *testing.T) {
	tr := New(zap.NewNop())

	rec, _ := tr.Map(villaProperty())
	require.NotNil(t, rec.LivingSpace)
	assert.Equal(t, 180.0, *rec.LivingSpace)
	require.NotNil(t, rec.PlotArea)
	assert.Equal(t, 600.0, *rec.PlotArea)
	// total and net fall back to the plot figure.
	require.NotNil(t, rec.TotalFloorSpace)
	assert.Equal(t, 600.0, *rec.TotalFloorSpace)
	require.NotNil(t, rec.NetFloorSpace)
	assert.Equal(t, 600.0, *rec.NetFloorSpace)
}

func TestMap_NoSurfaceBlock(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.SurfaceArea = nil

	rec, _ := tr.Map(prop)
	assert.Nil(t, rec.LivingSpace)
	require.NotNil(t, rec.PlotArea)
	assert.Zero(t, *rec.PlotArea)
}

func TestMap_TradeSite(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Type = "restaurant"

	rec, ok := tr.Map(prop)
	require.True(t, ok)
	assert.Equal(t, is24.TypeTradeSite, rec.Type)
	assert.Equal(t, "BUY", rec.CommercializationType)
	assert.Equal(t, "LEISURE", rec.UtilizationTradeSite)
	assert.Equal(t, []string{"GASTRONOMY"}, rec.RecommendedUseTypes)
	assert.Equal(t, "NO_INFORMATION", rec.SiteDevelopmentType)
	assert.Equal(t, "NO_INFORMATION", rec.LeaseInterval)
}

func TestMap_TradeSiteEnumFallback(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Type = "shop"
	prop.UtilizationTradeSite = "SHOPPING"
	prop.CommercializationType = "RENT_TO_OWN"

	rec, _ := tr.Map(prop)
	assert.Equal(t, "NO_INFORMATION", rec.UtilizationTradeSite)
	assert.Equal(t, "BUY", rec.CommercializationType)
}

func TestMap_LivingBuySite(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Type = "land"

	rec, _ := tr.Map(prop)
	assert.Equal(t, is24.TypeLivingBuySite, rec.Type)
	assert.Equal(t, "BUY", rec.CommercializationType)
}

func TestMap_Description(t *testing.T) {
	tr := New(zap.NewNop())

	rec, _ := tr.Map(villaProperty())
	assert.Equal(t, "Villa: Lovely villa with sea views.", rec.DescriptionNote)
}

func TestMap_MissingDescription(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Desc = nil

	rec, _ := tr.Map(prop)
	assert.Equal(t, "Villa: No description provided", rec.DescriptionNote)
}

func TestMap_LongDescriptionOverflowsToOtherNote(t *testing.T) {
	tr := New(zap.NewNop())

	prop := villaProperty()
	prop.Desc = &kyero.Description{
		En: strings.Repeat("a", 1500) + "\n\n" + strings.Repeat("b", 1500),
	}

	rec, _ := tr.Map(prop)
	assert.LessOrEqual(t, len(rec.DescriptionNote), 2000)
	assert.NotEmpty(t, rec.OtherNote)
	assert.True(t, strings.HasPrefix(rec.OtherNote, "b"))
}
