package units

// affine maps a temperature scale to and from Celsius.
type affine struct {
	toCelsius   func(v float64) float64
	fromCelsius func(c float64) float64
}

func temperatureDomain() Domain {
	return Domain{
		ID: Temperature, Name: "Temperature", Base: "c", Precision: 2,
		Units: []Unit{
			{ID: "c", Symbol: "°C", Name: "Celsius"},
			{ID: "f", Symbol: "°F", Name: "Fahrenheit"},
			{ID: "k", Symbol: "K", Name: "Kelvin"},
			{ID: "r", Symbol: "°R", Name: "Rankine"},
		},
		affine: map[string]affine{
			"c": {
				toCelsius:   func(v float64) float64 { return v },
				fromCelsius: func(c float64) float64 { return c },
			},
			"f": {
				toCelsius:   func(v float64) float64 { return (v - 32) * 5 / 9 },
				fromCelsius: func(c float64) float64 { return c*9/5 + 32 },
			},
			"k": {
				toCelsius:   func(v float64) float64 { return v - 273.15 },
				fromCelsius: func(c float64) float64 { return c + 273.15 },
			},
			"r": {
				toCelsius:   func(v float64) float64 { return (v - 491.67) * 5 / 9 },
				fromCelsius: func(c float64) float64 { return (c + 273.15) * 9 / 5 },
			},
		},
	}
}
