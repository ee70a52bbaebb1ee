package entities

// TrainingRow is one historical priced line joined with its catalog item
// attributes. ActualPrice is the price the line was quoted at.
type TrainingRow struct {
	QuotationID string
	LineNo      int
	Width       float64
	Height      float64
	Quantity    int
	ProductType ProductType
	Material    Material
	ActualPrice float64
}
