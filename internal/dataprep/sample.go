package dataprep

import "github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"

func fp(v float64) *float64 { return &v }

// SampleSuburbs returns an embedded slice of Sydney suburbs so the seed tool
// works offline. Figures are indicative, not live data.
func SampleSuburbs() []models.SuburbRecord {
	return []models.SuburbRecord{
		{
			SuburbKey: "auburn-2144", Postcode: "2144", Name: "Auburn",
			Latitude: -33.8495, Longitude: 151.0331,
			Rent1Bed: fp(420), Rent2Bed: fp(520), Rent3Bed: fp(620), Rent4Bed: fp(750),
			RentOverall: fp(530), RentAverage: fp(545), TotalBonds: 3120, MedianIncome: fp(1510),
			DwellingMix: map[string]float64{"apartment": 62, "house": 26, "townhouse": 12},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 400}, {Year: 2022, Rent: 440}, {Year: 2023, Rent: 490}, {Year: 2024, Rent: 530}},
		},
		{
			SuburbKey: "bankstown-2200", Postcode: "2200", Name: "Bankstown",
			Latitude: -33.9181, Longitude: 151.0352,
			Rent1Bed: fp(430), Rent2Bed: fp(530), Rent3Bed: fp(650), Rent4Bed: fp(780),
			RentOverall: fp(540), RentAverage: fp(552), TotalBonds: 2890, MedianIncome: fp(1480),
			DwellingMix: map[string]float64{"apartment": 55, "house": 33, "townhouse": 12},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 420}, {Year: 2022, Rent: 460}, {Year: 2023, Rent: 500}, {Year: 2024, Rent: 540}},
		},
		{
			SuburbKey: "blacktown-2148", Postcode: "2148", Name: "Blacktown",
			Latitude: -33.7710, Longitude: 150.9063,
			Rent1Bed: fp(400), Rent2Bed: fp(500), Rent3Bed: fp(600), Rent4Bed: fp(700), Rent5Plus: fp(820),
			RentOverall: fp(550), RentAverage: fp(560), TotalBonds: 4150, MedianIncome: fp(1620),
			DwellingMix: map[string]float64{"house": 58, "apartment": 28, "townhouse": 14},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 430}, {Year: 2022, Rent: 470}, {Year: 2023, Rent: 510}, {Year: 2024, Rent: 550}},
		},
		{
			SuburbKey: "bondi-2026", Postcode: "2026", Name: "Bondi",
			Latitude: -33.8915, Longitude: 151.2767,
			Rent1Bed: fp(720), Rent2Bed: fp(1050), Rent3Bed: fp(1500), Rent4Bed: fp(2100),
			RentOverall: fp(1050), RentAverage: fp(1120), TotalBonds: 2310, MedianIncome: fp(2350),
			DwellingMix: map[string]float64{"apartment": 74, "house": 18, "townhouse": 8},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 850}, {Year: 2022, Rent: 920}, {Year: 2023, Rent: 990}, {Year: 2024, Rent: 1050}},
		},
		{
			SuburbKey: "campsie-2194", Postcode: "2194", Name: "Campsie",
			Latitude: -33.9106, Longitude: 151.1033,
			Rent1Bed: fp(410), Rent2Bed: fp(510), Rent3Bed: fp(640),
			RentOverall: fp(510), RentAverage: fp(522), TotalBonds: 1980, MedianIncome: fp(1430),
			DwellingMix: map[string]float64{"apartment": 68, "house": 24, "townhouse": 8},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 400}, {Year: 2022, Rent: 430}, {Year: 2023, Rent: 470}, {Year: 2024, Rent: 510}},
		},
		{
			SuburbKey: "chatswood-2067", Postcode: "2067", Name: "Chatswood",
			Latitude: -33.7969, Longitude: 151.1803,
			Rent1Bed: fp(650), Rent2Bed: fp(850), Rent3Bed: fp(1150), Rent4Bed: fp(1500),
			RentOverall: fp(850), RentAverage: fp(880), TotalBonds: 2650, MedianIncome: fp(2240),
			DwellingMix: map[string]float64{"apartment": 71, "house": 21, "townhouse": 8},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 700}, {Year: 2022, Rent: 740}, {Year: 2023, Rent: 800}, {Year: 2024, Rent: 850}},
		},
		{
			SuburbKey: "granville-2142", Postcode: "2142", Name: "Granville",
			Latitude: -33.8332, Longitude: 151.0133,
			Rent1Bed: fp(400), Rent2Bed: fp(490), Rent3Bed: fp(600),
			RentOverall: fp(500), RentAverage: fp(512), TotalBonds: 1540, MedianIncome: fp(1390),
			DwellingMix: map[string]float64{"apartment": 59, "house": 31, "townhouse": 10},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 390}, {Year: 2022, Rent: 420}, {Year: 2023, Rent: 460}, {Year: 2024, Rent: 500}},
		},
		{
			SuburbKey: "hornsby-2077", Postcode: "2077", Name: "Hornsby",
			Latitude: -33.7035, Longitude: 151.0989,
			Rent1Bed: fp(480), Rent2Bed: fp(600), Rent3Bed: fp(750), Rent4Bed: fp(900),
			RentOverall: fp(620), RentAverage: fp(635), TotalBonds: 2120, MedianIncome: fp(1880),
			DwellingMix: map[string]float64{"apartment": 48, "house": 42, "townhouse": 10},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 520}, {Year: 2022, Rent: 550}, {Year: 2023, Rent: 580}, {Year: 2024, Rent: 620}},
		},
		{
			SuburbKey: "lakemba-2195", Postcode: "2195", Name: "Lakemba",
			Latitude: -33.9198, Longitude: 151.0757,
			Rent1Bed: fp(380), Rent2Bed: fp(470), Rent3Bed: fp(580),
			RentOverall: fp(470), RentAverage: fp(478), TotalBonds: 1460, MedianIncome: fp(1210),
			DwellingMix: map[string]float64{"apartment": 72, "house": 22, "townhouse": 6},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 370}, {Year: 2022, Rent: 400}, {Year: 2023, Rent: 435}, {Year: 2024, Rent: 470}},
		},
		{
			SuburbKey: "liverpool-2170", Postcode: "2170", Name: "Liverpool",
			Latitude: -33.9200, Longitude: 150.9230,
			Rent1Bed: fp(420), Rent2Bed: fp(500), Rent3Bed: fp(600), Rent4Bed: fp(720), Rent5Plus: fp(850),
			RentOverall: fp(530), RentAverage: fp(540), TotalBonds: 3480, MedianIncome: fp(1520),
			DwellingMix: map[string]float64{"house": 46, "apartment": 41, "townhouse": 13},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 420}, {Year: 2022, Rent: 455}, {Year: 2023, Rent: 490}, {Year: 2024, Rent: 530}},
		},
		{
			SuburbKey: "newtown-2042", Postcode: "2042", Name: "Newtown",
			Latitude: -33.8978, Longitude: 151.1785,
			Rent1Bed: fp(580), Rent2Bed: fp(780), Rent3Bed: fp(1020),
			RentOverall: fp(760), RentAverage: fp(790), TotalBonds: 1890, MedianIncome: fp(2080),
			DwellingMix: map[string]float64{"house": 49, "apartment": 44, "townhouse": 7},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 620}, {Year: 2022, Rent: 660}, {Year: 2023, Rent: 710}, {Year: 2024, Rent: 760}},
		},
		{
			SuburbKey: "parramatta-2150", Postcode: "2150", Name: "Parramatta",
			Latitude: -33.8150, Longitude: 151.0011,
			Rent1Bed: fp(520), Rent2Bed: fp(620), Rent3Bed: fp(750), Rent4Bed: fp(880),
			RentOverall: fp(620), RentAverage: fp(640), TotalBonds: 5230, MedianIncome: fp(1750),
			DwellingMix: map[string]float64{"apartment": 78, "house": 14, "townhouse": 8},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 500}, {Year: 2022, Rent: 540}, {Year: 2023, Rent: 580}, {Year: 2024, Rent: 620}},
		},
		{
			SuburbKey: "penrith-2750", Postcode: "2750", Name: "Penrith",
			Latitude: -33.7510, Longitude: 150.6940,
			Rent1Bed: fp(380), Rent2Bed: fp(460), Rent3Bed: fp(550), Rent4Bed: fp(650),
			RentOverall: fp(520), RentAverage: fp(528), TotalBonds: 2740, MedianIncome: fp(1580),
			DwellingMix: map[string]float64{"house": 61, "apartment": 25, "townhouse": 14},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 410}, {Year: 2022, Rent: 445}, {Year: 2023, Rent: 480}, {Year: 2024, Rent: 520}},
		},
		{
			SuburbKey: "surry-hills-2010", Postcode: "2010", Name: "Surry Hills",
			Latitude: -33.8857, Longitude: 151.2104,
			Rent1Bed: fp(650), Rent2Bed: fp(900), Rent3Bed: fp(1250),
			RentOverall: fp(880), RentAverage: fp(915), TotalBonds: 2470, MedianIncome: fp(2290),
			DwellingMix: map[string]float64{"apartment": 81, "house": 13, "townhouse": 6},
			RentTrend:   []models.TrendPoint{{Year: 2021, Rent: 720}, {Year: 2022, Rent: 770}, {Year: 2023, Rent: 820}, {Year: 2024, Rent: 880}},
		},
	}
}

// SampleStations returns the embedded transit station table.
func SampleStations() []models.TrainStation {
	return []models.TrainStation{
		{Name: "Auburn", Latitude: -33.8494, Longitude: 151.0330, Lines: []string{"T1", "T2"}, Mode: "train"},
		{Name: "Bankstown", Latitude: -33.9177, Longitude: 151.0343, Lines: []string{"T3"}, Mode: "train"},
		{Name: "Blacktown", Latitude: -33.7686, Longitude: 150.9067, Lines: []string{"T1", "T5"}, Mode: "train"},
		{Name: "Bondi Junction", Latitude: -33.8912, Longitude: 151.2505, Lines: []string{"T4"}, Mode: "train"},
		{Name: "Campsie", Latitude: -33.9110, Longitude: 151.1030, Lines: []string{"T3"}, Mode: "train"},
		{Name: "Central", Latitude: -33.8832, Longitude: 151.2070, Lines: []string{"T1", "T2", "T3", "T4", "T8"}, Mode: "train"},
		{Name: "Chatswood", Latitude: -33.7972, Longitude: 151.1808, Lines: []string{"T1", "M1"}, Mode: "metro"},
		{Name: "Granville", Latitude: -33.8339, Longitude: 151.0117, Lines: []string{"T1", "T2", "T5"}, Mode: "train"},
		{Name: "Hornsby", Latitude: -33.7036, Longitude: 151.0989, Lines: []string{"T1", "T9"}, Mode: "train"},
		{Name: "Lakemba", Latitude: -33.9201, Longitude: 151.0756, Lines: []string{"T3"}, Mode: "train"},
		{Name: "Liverpool", Latitude: -33.9245, Longitude: 150.9238, Lines: []string{"T2", "T3", "T5"}, Mode: "train"},
		{Name: "Newtown", Latitude: -33.8976, Longitude: 151.1795, Lines: []string{"T2", "T3"}, Mode: "train"},
		{Name: "Parramatta", Latitude: -33.8173, Longitude: 151.0046, Lines: []string{"T1", "T2", "T5"}, Mode: "train"},
		{Name: "Penrith", Latitude: -33.7509, Longitude: 150.6954, Lines: []string{"T1", "T5"}, Mode: "train"},
		{Name: "Surry Hills", Latitude: -33.8860, Longitude: 151.2119, Lines: []string{"L2"}, Mode: "light_rail"},
	}
}

// SampleAmenities returns the embedded per-postcode amenity table.
func SampleAmenities() map[string][]models.Amenity {
	return map[string][]models.Amenity{
		"2144": {
			{Name: "Auburn Hospital", Category: "hospital", DistanceKm: 0.9},
			{Name: "Auburn Girls High School", Category: "school", DistanceKm: 1.1},
			{Name: "Auburn North Public School", Category: "school", DistanceKm: 1.4},
			{Name: "Auburn Police Station", Category: "police", DistanceKm: 0.4},
			{Name: "Auburn Botanic Gardens", Category: "park", DistanceKm: 1.2},
		},
		"2150": {
			{Name: "Westmead Hospital", Category: "hospital", DistanceKm: 2.3},
			{Name: "Parramatta High School", Category: "school", DistanceKm: 0.8},
			{Name: "Arthur Phillip High School", Category: "school", DistanceKm: 0.5},
			{Name: "Western Sydney University Parramatta", Category: "university", DistanceKm: 1.6},
			{Name: "Parramatta Police Station", Category: "police", DistanceKm: 0.6},
			{Name: "Parramatta Fire Station", Category: "fire_station", DistanceKm: 0.7},
			{Name: "Parramatta Park", Category: "park", DistanceKm: 0.9},
		},
		"2170": {
			{Name: "Liverpool Hospital", Category: "hospital", DistanceKm: 0.7},
			{Name: "Liverpool Boys High School", Category: "school", DistanceKm: 1.3},
			{Name: "Western Sydney University Liverpool", Category: "university", DistanceKm: 0.5},
			{Name: "Liverpool Police Station", Category: "police", DistanceKm: 0.8},
		},
		"2148": {
			{Name: "Blacktown Hospital", Category: "hospital", DistanceKm: 1.8},
			{Name: "Blacktown Boys High School", Category: "school", DistanceKm: 1.0},
			{Name: "Blacktown Girls High School", Category: "school", DistanceKm: 1.1},
			{Name: "Blacktown Police Station", Category: "police", DistanceKm: 0.5},
			{Name: "Blacktown Showground", Category: "park", DistanceKm: 0.9},
		},
	}
}
