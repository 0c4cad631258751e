package units

const (
	ftM   = 0.3048
	inM   = 0.0254
	ft2M2 = ftM * ftM
	lbKg  = 0.45359237
	gravA = 9.80665
)

func builtinDomains() []Domain {
	return []Domain{
		{
			ID: Length, Name: "Length", Base: "m", Precision: 4,
			Units: []Unit{
				{ID: "um", Symbol: "µm", Name: "Micrometer", Factor: 1e-6},
				{ID: "mm", Symbol: "mm", Name: "Millimeter", Factor: 0.001},
				{ID: "cm", Symbol: "cm", Name: "Centimeter", Factor: 0.01},
				{ID: "m", Symbol: "m", Name: "Meter", Factor: 1},
				{ID: "km", Symbol: "km", Name: "Kilometer", Factor: 1000},
				{ID: "in", Symbol: "in", Name: "Inch", Factor: inM},
				{ID: "ft", Symbol: "ft", Name: "Foot", Factor: ftM},
				{ID: "yd", Symbol: "yd", Name: "Yard", Factor: 0.9144},
				{ID: "mi", Symbol: "mi", Name: "Mile", Factor: 1609.344},
				{ID: "nmi", Symbol: "nmi", Name: "Nautical mile", Factor: 1852},
			},
		},
		{
			ID: Area, Name: "Area", Base: "m2", Precision: 4,
			Units: []Unit{
				{ID: "mm2", Symbol: "mm²", Name: "Square millimeter", Factor: 1e-6},
				{ID: "cm2", Symbol: "cm²", Name: "Square centimeter", Factor: 1e-4},
				{ID: "m2", Symbol: "m²", Name: "Square meter", Factor: 1},
				{ID: "ha", Symbol: "ha", Name: "Hectare", Factor: 10000},
				{ID: "km2", Symbol: "km²", Name: "Square kilometer", Factor: 1e6},
				{ID: "in2", Symbol: "in²", Name: "Square inch", Factor: inM * inM},
				{ID: "ft2", Symbol: "ft²", Name: "Square foot", Factor: ft2M2},
				{ID: "yd2", Symbol: "yd²", Name: "Square yard", Factor: 0.83612736},
				{ID: "acre", Symbol: "ac", Name: "Acre", Factor: 4046.8564224},
				{ID: "mi2", Symbol: "mi²", Name: "Square mile", Factor: 2589988.110336},
			},
		},
		{
			ID: Volume, Name: "Volume", Base: "l", Precision: 4,
			Units: []Unit{
				{ID: "ml", Symbol: "mL", Name: "Milliliter", Factor: 0.001},
				{ID: "cm3", Symbol: "cm³", Name: "Cubic centimeter", Factor: 0.001},
				{ID: "l", Symbol: "L", Name: "Liter", Factor: 1},
				{ID: "m3", Symbol: "m³", Name: "Cubic meter", Factor: 1000},
				{ID: "in3", Symbol: "in³", Name: "Cubic inch", Factor: 0.016387064},
				{ID: "ft3", Symbol: "ft³", Name: "Cubic foot", Factor: 28.316846592},
				{ID: "yd3", Symbol: "yd³", Name: "Cubic yard", Factor: 764.554857984},
				{ID: "gal", Symbol: "gal", Name: "US gallon", Factor: 3.785411784},
				{ID: "gal_uk", Symbol: "gal (UK)", Name: "Imperial gallon", Factor: 4.54609},
				{ID: "qt", Symbol: "qt", Name: "US quart", Factor: 0.946352946},
				{ID: "pt", Symbol: "pt", Name: "US pint", Factor: 0.473176473},
				{ID: "brass", Symbol: "brass", Name: "Brass (100 ft³)", Factor: 2831.6846592},
			},
		},
		{
			ID: Weight, Name: "Weight", Base: "kg", Precision: 4,
			Units: []Unit{
				{ID: "mg", Symbol: "mg", Name: "Milligram", Factor: 1e-6},
				{ID: "g", Symbol: "g", Name: "Gram", Factor: 0.001},
				{ID: "kg", Symbol: "kg", Name: "Kilogram", Factor: 1},
				{ID: "quintal", Symbol: "q", Name: "Quintal", Factor: 100},
				{ID: "t", Symbol: "t", Name: "Metric ton", Factor: 1000},
				{ID: "oz", Symbol: "oz", Name: "Ounce", Factor: 0.028349523125},
				{ID: "lb", Symbol: "lb", Name: "Pound", Factor: lbKg},
				{ID: "st", Symbol: "st", Name: "Stone", Factor: 6.35029318},
				{ID: "ton_us", Symbol: "sh tn", Name: "Short ton", Factor: 907.18474},
				{ID: "ton_uk", Symbol: "LT", Name: "Long ton", Factor: 1016.0469088},
				{ID: "tola", Symbol: "tola", Name: "Tola", Factor: 0.0116638038},
			},
		},
		{
			ID: Density, Name: "Density", Base: "kg/m3", Precision: 4,
			Units: []Unit{
				{ID: "kg/m3", Symbol: "kg/m³", Name: "Kilogram per cubic meter", Factor: 1},
				{ID: "g/cm3", Symbol: "g/cm³", Name: "Gram per cubic centimeter", Factor: 1000},
				{ID: "g/ml", Symbol: "g/mL", Name: "Gram per milliliter", Factor: 1000},
				{ID: "kg/l", Symbol: "kg/L", Name: "Kilogram per liter", Factor: 1000},
				{ID: "t/m3", Symbol: "t/m³", Name: "Tonne per cubic meter", Factor: 1000},
				{ID: "lb/ft3", Symbol: "lb/ft³", Name: "Pound per cubic foot", Factor: lbKg / 0.028316846592},
				{ID: "lb/in3", Symbol: "lb/in³", Name: "Pound per cubic inch", Factor: lbKg / 0.000016387064},
				{ID: "lb/gal", Symbol: "lb/gal", Name: "Pound per US gallon", Factor: lbKg / 0.003785411784},
			},
		},
		{
			ID: Pressure, Name: "Pressure / Stress", Base: "Pa", Precision: 6,
			Units: []Unit{
				{ID: "pa", Symbol: "Pa", Name: "Pascal", Factor: 1},
				{ID: "kpa", Symbol: "kPa", Name: "Kilopascal", Factor: 1e3},
				{ID: "mpa", Symbol: "MPa", Name: "Megapascal", Factor: 1e6},
				{ID: "gpa", Symbol: "GPa", Name: "Gigapascal", Factor: 1e9},
				{ID: "n/mm2", Symbol: "N/mm²", Name: "Newton per square millimeter", Factor: 1e6},
				{ID: "kn/m2", Symbol: "kN/m²", Name: "Kilonewton per square meter", Factor: 1e3},
				{ID: "bar", Symbol: "bar", Name: "Bar", Factor: 1e5},
				{ID: "atm", Symbol: "atm", Name: "Atmosphere", Factor: 101325},
				{ID: "psi", Symbol: "psi", Name: "Pound per square inch", Factor: lbKg * gravA / (inM * inM)},
				{ID: "ksi", Symbol: "ksi", Name: "Kilopound per square inch", Factor: 1000 * lbKg * gravA / (inM * inM)},
				{ID: "kgf/cm2", Symbol: "kgf/cm²", Name: "Kilogram-force per square centimeter", Factor: gravA * 1e4},
				{ID: "torr", Symbol: "Torr", Name: "Torr", Factor: 101325.0 / 760},
			},
		},
		{
			ID: Energy, Name: "Energy", Base: "J", Precision: 6,
			Units: []Unit{
				{ID: "j", Symbol: "J", Name: "Joule", Factor: 1},
				{ID: "kj", Symbol: "kJ", Name: "Kilojoule", Factor: 1e3},
				{ID: "mj", Symbol: "MJ", Name: "Megajoule", Factor: 1e6},
				{ID: "cal", Symbol: "cal", Name: "Calorie", Factor: 4.184},
				{ID: "kcal", Symbol: "kcal", Name: "Kilocalorie", Factor: 4184},
				{ID: "wh", Symbol: "Wh", Name: "Watt-hour", Factor: 3600},
				{ID: "kwh", Symbol: "kWh", Name: "Kilowatt-hour", Factor: 3.6e6},
				{ID: "btu", Symbol: "BTU", Name: "British thermal unit", Factor: 1055.05585262},
				{ID: "ftlbf", Symbol: "ft·lbf", Name: "Foot-pound", Factor: ftM * lbKg * gravA},
				{ID: "ev", Symbol: "eV", Name: "Electronvolt", Factor: 1.602176634e-19},
				{ID: "erg", Symbol: "erg", Name: "Erg", Factor: 1e-7},
			},
		},
		{
			ID: Time, Name: "Time", Base: "s", Precision: 4,
			Units: []Unit{
				{ID: "ns", Symbol: "ns", Name: "Nanosecond", Factor: 1e-9},
				{ID: "us", Symbol: "µs", Name: "Microsecond", Factor: 1e-6},
				{ID: "ms", Symbol: "ms", Name: "Millisecond", Factor: 1e-3},
				{ID: "s", Symbol: "s", Name: "Second", Factor: 1},
				{ID: "min", Symbol: "min", Name: "Minute", Factor: 60},
				{ID: "h", Symbol: "h", Name: "Hour", Factor: 3600},
				{ID: "day", Symbol: "d", Name: "Day", Factor: 86400},
				{ID: "week", Symbol: "wk", Name: "Week", Factor: 604800},
				// Gregorian averages: 365.2425 days per year.
				{ID: "month", Symbol: "mo", Name: "Month", Factor: 2629746},
				{ID: "year", Symbol: "yr", Name: "Year", Factor: 31556952},
			},
		},
		{
			ID: Flow, Name: "Flow rate", Base: "m3/s", Precision: 6,
			Units: []Unit{
				{ID: "m3/s", Symbol: "m³/s", Name: "Cubic meter per second", Factor: 1},
				{ID: "m3/h", Symbol: "m³/h", Name: "Cubic meter per hour", Factor: 1.0 / 3600},
				{ID: "l/s", Symbol: "L/s", Name: "Liter per second", Factor: 1e-3},
				{ID: "l/min", Symbol: "L/min", Name: "Liter per minute", Factor: 1e-3 / 60},
				{ID: "l/h", Symbol: "L/h", Name: "Liter per hour", Factor: 1e-3 / 3600},
				{ID: "gpm", Symbol: "gpm", Name: "US gallon per minute", Factor: 0.003785411784 / 60},
				{ID: "cfm", Symbol: "cfm", Name: "Cubic foot per minute", Factor: 0.028316846592 / 60},
				{ID: "cfs", Symbol: "cfs", Name: "Cubic foot per second", Factor: 0.028316846592},
			},
		},
		temperatureDomain(),
		{
			ID: Land, Name: "Land area", Base: "m2", Precision: 4,
			Units: []Unit{
				{ID: "m2", Symbol: "m²", Name: "Square meter", Factor: 1},
				{ID: "ft2", Symbol: "ft²", Name: "Square foot", Factor: ft2M2},
				{ID: "gaj", Symbol: "gaj", Name: "Gaj (square yard)", Factor: 0.83612736},
				{ID: "ankanam", Symbol: "ankanam", Name: "Ankanam", Factor: 72 * ft2M2},
				{ID: "marla", Symbol: "marla", Name: "Marla", Factor: 272.25 * ft2M2},
				{ID: "cent", Symbol: "cent", Name: "Cent", Factor: 435.6 * ft2M2},
				{ID: "decimal", Symbol: "decimal", Name: "Decimal", Factor: 435.6 * ft2M2},
				{ID: "katha", Symbol: "katha", Name: "Katha", Factor: 720 * ft2M2},
				{ID: "guntha", Symbol: "guntha", Name: "Guntha", Factor: 1089 * ft2M2},
				{ID: "biswa", Symbol: "biswa", Name: "Biswa", Factor: 1361.25 * ft2M2},
				{ID: "ground", Symbol: "ground", Name: "Ground", Factor: 2400 * ft2M2},
				{ID: "kanal", Symbol: "kanal", Name: "Kanal", Factor: 5445 * ft2M2},
				{ID: "bigha", Symbol: "bigha", Name: "Bigha", Factor: 27225 * ft2M2},
				{ID: "acre", Symbol: "ac", Name: "Acre", Factor: 4046.8564224},
				{ID: "ha", Symbol: "ha", Name: "Hectare", Factor: 10000},
			},
		},
		{
			ID: Speed, Name: "Speed", Base: "m/s", Precision: 4,
			Units: []Unit{
				{ID: "m/s", Symbol: "m/s", Name: "Meter per second", Factor: 1},
				{ID: "km/h", Symbol: "km/h", Name: "Kilometer per hour", Factor: 1000.0 / 3600},
				{ID: "mph", Symbol: "mph", Name: "Mile per hour", Factor: 1609.344 / 3600},
				{ID: "ft/s", Symbol: "ft/s", Name: "Foot per second", Factor: ftM},
				{ID: "kn", Symbol: "kn", Name: "Knot", Factor: 1852.0 / 3600},
			},
		},
		{
			ID: Force, Name: "Force", Base: "N", Precision: 4,
			Units: []Unit{
				{ID: "n", Symbol: "N", Name: "Newton", Factor: 1},
				{ID: "kn", Symbol: "kN", Name: "Kilonewton", Factor: 1000},
				{ID: "mn", Symbol: "MN", Name: "Meganewton", Factor: 1e6},
				{ID: "dyn", Symbol: "dyn", Name: "Dyne", Factor: 1e-5},
				{ID: "kgf", Symbol: "kgf", Name: "Kilogram-force", Factor: gravA},
				{ID: "tf", Symbol: "tf", Name: "Tonne-force", Factor: 1000 * gravA},
				{ID: "lbf", Symbol: "lbf", Name: "Pound-force", Factor: lbKg * gravA},
				{ID: "kip", Symbol: "kip", Name: "Kip", Factor: 1000 * lbKg * gravA},
			},
		},
		currencyDomain(defaultRates),
	}
}
