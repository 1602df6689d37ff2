// internal/services/units.go
package services

// Conversion factors to grams (mass) or milliliters (volume). Kitchen
// measures follow Brazilian convention: colher is a tablespoon, xícara a
// standard cup, unidade an average egg-sized unit, pitada a pinch.
var unitFactors = map[string]float64{
	"g":       1,
	"kg":      1000,
	"ml":      1,
	"l":       1000,
	"colher":  15,
	"xícara":  240,
	"xicara":  240,
	"unidade": 50,
	"pitada":  0.5,
}

// Volume units convert to grams through the ingredient's density.
var volumeUnits = map[string]bool{
	"ml":     true,
	"l":      true,
	"colher": true,
	"xícara": true,
	"xicara": true,
}

// ToBaseUnit converts a quantity in the given unit to base units (grams).
// Unknown units pass through unscaled. A density of zero or less falls back
// to 1.0 so water-like ingredients need no explicit density.
func ToBaseUnit(quantity float64, unit string, density float64) float64 {
	factor, ok := unitFactors[unit]
	if !ok {
		factor = 1
	}

	converted := quantity * factor

	if volumeUnits[unit] {
		if density <= 0 {
			density = 1.0
		}
		converted *= density
	}

	return converted
}

// IngredientCost prices a converted quantity against the package the
// ingredient is bought in. A non-positive package quantity yields zero
// rather than a division error.
func IngredientCost(packagePrice, packageQuantity, convertedQuantity float64) float64 {
	if packageQuantity <= 0 {
		return 0
	}
	return (packagePrice / packageQuantity) * convertedQuantity
}
