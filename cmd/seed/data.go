package main

import "cafe-map/internal/model"

const (
	seedEmail    = "admin@cafemap.com"
	seedName     = "官方推薦"
	seedPassword = "password123"
)

// seedCafes 台北信義區的示範咖啡廳
var seedCafes = []model.Cafe{
	{
		Title:         "CURISTA COFFEE 奎士咖啡 市府店",
		Address:       "臺北市信義區忠孝東路四段563號1樓",
		Latitude:      25.04231,
		Longitude:     121.56588,
		ImageURL:      strPtr("https://images.unsplash.com/photo-1511920183353-241c1b00080c?q=80&w=600"),
		GoogleMapsURL: strPtr("https://www.google.com/maps/search/?api=1&query=CURISTA+COFFEE+奎士咖啡+市府店"),
	},
	{
		Title:         "Single Origin espresso & roast",
		Address:       "臺北市信義區吳興街220巷35-2號 2F",
		Latitude:      25.027116,
		Longitude:     121.562237,
		ImageURL:      strPtr("https://images.unsplash.com/photo-1509042239860-f550ce710b93?q=80&w=600"),
		GoogleMapsURL: strPtr("https://www.google.com/maps/search/?api=1&query=Single+Origin+espresso+roast+台北市信義區莊敬路"),
	},
	{
		Title:         "NORMAL COFFEE",
		Address:       "臺北市信義區忠孝東路五段68號24樓",
		Latitude:      25.0401943,
		Longitude:     121.5670107,
		ImageURL:      strPtr("https://images.unsplash.com/photo-1495474472287-4d713b22e8b4?q=80&w=600"),
		GoogleMapsURL: strPtr("https://www.google.com/maps/search/?api=1&query=NORMAL+COFFEE+信義店"),
	},
	{
		Title:         "Draft Land",
		Address:       "台北市信義區松高路19號",
		Latitude:      25.04359,
		Longitude:     121.56701,
		ImageURL:      strPtr("https://images.unsplash.com/photo-1551030173-122aabc4469c?q=80&w=600"),
		GoogleMapsURL: strPtr("https://www.google.com/maps/search/?api=1&query=Draft+Land+信義"),
	},
	{
		Title:         "CAFE ACME",
		Address:       "台北市信義區信義路五段7號35樓",
		Latitude:      25.03361,
		Longitude:     121.56450,
		ImageURL:      strPtr("https://images.unsplash.com/photo-1512568400610-62381bc80b61?q=80&w=600"),
		GoogleMapsURL: strPtr("https://www.google.com/maps/search/?api=1&query=CAFE+ACME+Taipei+101"),
	},
}

func strPtr(s string) *string { return &s }
