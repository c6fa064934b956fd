package is24

// Real-estate types accepted by the ImmoScout24 offer schema. Kyero property
// types collapse onto these four.
const (
	TypeHouseBuy      = "houseBuy"
	TypeApartmentBuy  = "apartmentBuy"
	TypeLivingBuySite = "livingBuySite"
	TypeTradeSite     = "tradeSite"
)

// RealEstate is one listing shaped for the ImmoScout24 feed. Optional numeric
// fields are pointers so an absent source value is distinguishable from zero;
// the validator relies on that to report missing required fields.
type RealEstate struct {
	Type       string
	ExternalID string
	Title      string

	Street      string
	HouseNumber string
	Postcode    string
	City        string
	Country     string
	Region      string
	Latitude    *float64
	Longitude   *float64
	ShowAddress bool

	DescriptionNote string
	FurnishingNote  string
	LocationNote    string
	OtherNote       string

	Value         *float64
	Currency      string
	MarketingType string

	// BuildingType applies to houseBuy, ApartmentType to apartmentBuy.
	BuildingType  string
	ApartmentType string

	NumberOfBedRooms  string
	NumberOfBathRooms string
	NumberOfRooms     int

	LivingSpace     *float64
	PlotArea        *float64
	TotalFloorSpace *float64
	NetFloorSpace   *float64

	// tradeSite and livingBuySite fields.
	CommercializationType  string
	UtilizationTradeSite   string
	RecommendedUseTypes    []string
	Tenancy                string
	MinDivisible           *float64
	FreeFrom               string
	ShortTermConstructible bool
	BuildingPermission     bool
	Demolition             bool
	SiteDevelopmentType    string
	SiteConstructibleType  string
	Grz                    *float64
	Gfz                    *float64
	LeaseInterval          string

	HasCourtage  string
	Courtage     string
	CourtageNote string

	SearchField1 string
	SearchField2 string
	SearchField3 string
	GroupNumber  string
}
