package catalog

// Color identifies a garment color in the fixed palette.
type Color string

const (
	ColorWhite Color = "white"
	ColorBlack Color = "black"
	ColorBeige Color = "beige"
	ColorGray  Color = "gray"
	ColorBlue  Color = "blue"
)

// Size is one of the fixed apparel size labels.
type Size string

const (
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Product is a catalog entry. The catalog is fixed data; products are never
// created or mutated at runtime.
type Product struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Price  int     `json:"price"`
	Colors []Color `json:"colors"`
	Sizes  []Size  `json:"sizes"`
	Image  string  `json:"image"`
}

// HasColor reports whether the product is offered in the given color.
func (p Product) HasColor(color Color) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// HasSize reports whether the product is offered in the given size.
func (p Product) HasSize(size Size) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// SizeMeasurements is one row of the size chart, in centimeters.
type SizeMeasurements struct {
	Size   Size `json:"size"`
	Width  int  `json:"width"`
	Length int  `json:"length"`
	Sleeve int  `json:"sleeve"`
}

var allSizes = []Size{SizeS, SizeM, SizeL, SizeXL, SizeXXL}

var products = []Product{
	{
		ID:     "tshirt-white",
		Name:   "Remera Lisa Blanca",
		Price:  8500,
		Colors: []Color{ColorWhite},
		Sizes:  allSizes,
		Image:  "/assets/tshirt-white.jpg",
	},
	{
		ID:     "tshirt-black",
		Name:   "Remera Lisa Negra",
		Price:  8500,
		Colors: []Color{ColorBlack},
		Sizes:  allSizes,
		Image:  "/assets/tshirt-black.jpg",
	},
	{
		ID:     "tshirt-beige",
		Name:   "Remera Lisa Beige",
		Price:  8500,
		Colors: []Color{ColorBeige},
		Sizes:  allSizes,
		Image:  "/assets/tshirt-beige.jpg",
	},
	{
		ID:     "tshirt-gray",
		Name:   "Remera Lisa Gris",
		Price:  8500,
		Colors: []Color{ColorGray},
		Sizes:  allSizes,
		Image:  "/assets/tshirt-gray.jpg",
	},
	{
		ID:     "tshirt-blue",
		Name:   "Remera Lisa Azul",
		Price:  8500,
		Colors: []Color{ColorBlue},
		Sizes:  allSizes,
		Image:  "/assets/tshirt-blue.jpg",
	},
}

var sizeChart = []SizeMeasurements{
	{Size: SizeS, Width: 45, Length: 68, Sleeve: 18},
	{Size: SizeM, Width: 49, Length: 73, Sleeve: 19},
	{Size: SizeL, Width: 53, Length: 75, Sleeve: 19},
	{Size: SizeXL, Width: 56, Length: 77, Sleeve: 20},
	{Size: SizeXXL, Width: 60, Length: 80, Sleeve: 22},
}

// Localized display names used when composing order messages.
var colorNames = map[Color]string{
	ColorWhite: "Blanca",
	ColorBlack: "Negra",
	ColorBeige: "Beige",
	ColorGray:  "Gris",
	ColorBlue:  "Azul",
}

// Products returns the full catalog in display order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ProductByID resolves a product from the static catalog.
func ProductByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// SizeChart returns the measurement table in size order.
func SizeChart() []SizeMeasurements {
	out := make([]SizeMeasurements, len(sizeChart))
	copy(out, sizeChart)
	return out
}

// MeasurementsFor looks up the chart row for a size label.
func MeasurementsFor(size Size) (SizeMeasurements, bool) {
	for _, row := range sizeChart {
		if row.Size == size {
			return row, true
		}
	}
	return SizeMeasurements{}, false
}

// ColorName returns the localized display name for a color, falling back to
// the raw value for anything outside the palette.
func ColorName(color Color) string {
	if name, ok := colorNames[color]; ok {
		return name
	}
	return string(color)
}
