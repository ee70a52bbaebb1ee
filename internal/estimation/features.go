package estimation

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"reliant_crm/internal/domain/entities"
)

const (
	ColumnWidth    = "width"
	ColumnHeight   = "height"
	ColumnQuantity = "quantity"

	productTypePrefix = "product_type_"
	materialPrefix    = "material_"
)

var numericColumns = []string{ColumnWidth, ColumnHeight, ColumnQuantity}

// PredictionInput is a hypothetical item to estimate.
type PredictionInput struct {
	Width       float64
	Height      float64
	Quantity    int
	ProductType entities.ProductType
	Material    entities.Material
}

func inputFromRow(r entities.TrainingRow) PredictionInput {
	return PredictionInput{
		Width:       r.Width,
		Height:      r.Height,
		Quantity:    r.Quantity,
		ProductType: r.ProductType,
		Material:    r.Material,
	}
}

// ProductTypeColumn is the indicator column name for a product type.
func ProductTypeColumn(t entities.ProductType) string { return productTypePrefix + string(t) }

// MaterialColumn is the indicator column name for a material.
func MaterialColumn(m entities.Material) string { return materialPrefix + string(m) }

// BuildSchema returns the ordered feature columns for a training corpus: the
// numeric columns first, then one indicator per observed product type and per
// observed material, each group sorted by value.
func BuildSchema(rows []entities.TrainingRow) []string {
	types := map[string]struct{}{}
	materials := map[string]struct{}{}
	for _, r := range rows {
		types[ProductTypeColumn(r.ProductType)] = struct{}{}
		materials[MaterialColumn(r.Material)] = struct{}{}
	}

	cols := make([]string, 0, len(numericColumns)+len(types)+len(materials))
	cols = append(cols, numericColumns...)
	cols = append(cols, sortedKeys(types)...)
	cols = append(cols, sortedKeys(materials)...)
	return cols
}

// EncodeRow builds the feature vector of in, aligned to columns.
//
// Columns with no value for this input are 0. A category value without a
// column produces an all-zero indicator group; it is reported in unseen as
// "field=value" and never adds a column.
func EncodeRow(columns []string, in PredictionInput) (x []float64, unseen []string) {
	ptCol := ProductTypeColumn(in.ProductType)
	matCol := MaterialColumn(in.Material)
	values := map[string]float64{
		ColumnWidth:    in.Width,
		ColumnHeight:   in.Height,
		ColumnQuantity: float64(in.Quantity),
		ptCol:          1,
		matCol:         1,
	}

	x = make([]float64, len(columns))
	var hasType, hasMaterial bool
	for i, c := range columns {
		x[i] = values[c]
		switch c {
		case ptCol:
			hasType = true
		case matCol:
			hasMaterial = true
		}
	}
	if !hasType {
		unseen = append(unseen, "product_type="+string(in.ProductType))
	}
	if !hasMaterial {
		unseen = append(unseen, "material="+string(in.Material))
	}
	return x, unseen
}

// SchemaID identifies an ordered column list. Artifacts carry it so a model
// is never paired with a different column list.
func SchemaID(columns []string) string {
	sum := sha256.Sum256([]byte(strings.Join(columns, "\x1f")))
	return hex.EncodeToString(sum[:8])
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
