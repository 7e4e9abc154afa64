package catalog

import "modernride.dev/ride/pkg/configurator"

// Default returns the Universal Modern Ride showroom catalog.
func Default() *Catalog {
	return &Catalog{
		Groups: []configurator.Group{
			{
				Name: "vehicle",
				Options: []configurator.Option{
					{ID: "car", Display: configurator.Display{Label: "Modern Car", Image: "images/car.glb", Price: 42000}},
					{ID: "bike", Display: configurator.Display{Label: "E-Bike", Image: "images/bike.glb", Price: 3500}},
					{ID: "vtol", Display: configurator.Display{Label: "VTOL Flyer", Image: "images/vtol.glb", Price: 250000}},
					{ID: "solar", Display: configurator.Display{Label: "Solar Cruiser", Image: "images/solar.glb", Price: 58000}},
				},
			},
			{
				Name: "color",
				Options: []configurator.Option{
					{ID: "blue", Display: configurator.Display{Label: "Midnight Blue", Swatch: "#0c2d57"}},
					{ID: "red", Display: configurator.Display{Label: "Racing Red", Swatch: "#c1121f", Price: 800}},
					{ID: "yellow", Display: configurator.Display{Label: "Solar Yellow", Swatch: "#ffc300", Price: 800}},
				},
			},
			{
				Name: "wheel",
				Options: []configurator.Option{
					{ID: "standard", Display: configurator.Display{Label: "Standard 18\"", Image: "images/wheel-standard.png"}},
					{ID: "sport", Display: configurator.Display{Label: "Sport 20\"", Image: "images/wheel-sport.png", Price: 1500}},
					{ID: "aero", Display: configurator.Display{Label: "Aero 19\"", Image: "images/wheel-aero.png", Price: 1200}},
				},
			},
			{
				Name: "interior",
				Options: []configurator.Option{
					{ID: "charcoal", Display: configurator.Display{Label: "Charcoal", Swatch: "#36454f"}},
					{ID: "sand", Display: configurator.Display{Label: "Desert Sand", Swatch: "#e0c9a6", Price: 600}},
					{ID: "ocean", Display: configurator.Display{Label: "Ocean Teal", Swatch: "#1b7f79", Price: 600}},
				},
			},
		},
		Defaults: map[string]string{
			"vehicle": "car",
			"color":   "blue",
		},
	}
}
