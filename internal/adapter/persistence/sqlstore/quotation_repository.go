package sqlstore

import (
	"context"
	"errors"
	"time"

	"reliant_crm/internal/domain/entities"
	"reliant_crm/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type QuotationRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuotationRepository = (*QuotationRepository)(nil)

func NewQuotationRepository(db *gorm.DB) *QuotationRepository {
	return &QuotationRepository{db: db}
}

// Create writes the quotation and its lines in one transaction.
func (r *QuotationRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	m := toQuotationModel(q)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := m.Lines
		m.Lines = nil
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	var m quotationModel
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") }).
		First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quotation{}, nil
	}
	if err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationModel(m)
}

func (r *QuotationRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quotation, error) {
	var ms []quotationModel
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") }).
		Where("customer_id = ?", customerID).
		Order("created_at ASC, id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quotation, 0, len(ms))
	for _, m := range ms {
		q, err := fromQuotationModel(m)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func (r *QuotationRepository) UpdateStatus(ctx context.Context, id string, from, next entities.QuotationStatus) (entities.Quotation, error) {
	res := r.db.WithContext(ctx).Model(&quotationModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]interface{}{
			"status":     string(next),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return entities.Quotation{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Quotation{}, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes the quotation and its lines, reporting whether it existed.
func (r *QuotationRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quotation_id = ?", id).Delete(&quotationLineModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&quotationModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

type trainingRowModel struct {
	QuotationID string
	LineNo      int
	Width       float64
	Height      float64
	Quantity    int
	ProductType string
	Material    string
	Price       string
}

// ListTrainingRows joins every quotation line with its catalog item.
func (r *QuotationRepository) ListTrainingRows(ctx context.Context) ([]entities.TrainingRow, error) {
	var ms []trainingRowModel
	err := r.db.WithContext(ctx).
		Table("quotation_lines AS l").
		Select("l.quotation_id, l.line_no, l.width, l.height, l.quantity, c.product_type, c.material, l.price").
		Joins("JOIN catalog_items AS c ON c.id = l.catalog_item_id").
		Order("l.quotation_id ASC, l.line_no ASC").
		Scan(&ms).Error
	if err != nil {
		return nil, err
	}
	rows := make([]entities.TrainingRow, 0, len(ms))
	for _, m := range ms {
		price, err := entities.ParseQuotedPrice(m.Price)
		if err != nil {
			return nil, err
		}
		rows = append(rows, entities.TrainingRow{
			QuotationID: m.QuotationID,
			LineNo:      m.LineNo,
			Width:       m.Width,
			Height:      m.Height,
			Quantity:    m.Quantity,
			ProductType: entities.ProductType(m.ProductType),
			Material:    entities.Material(m.Material),
			ActualPrice: price.Float64(),
		})
	}
	return rows, nil
}

func toQuotationModel(q entities.Quotation) quotationModel {
	lines := make([]quotationLineModel, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = quotationLineModel{
			QuotationID:   q.ID,
			LineNo:        i,
			CatalogItemID: l.CatalogItemID,
			Width:         l.Width,
			Height:        l.Height,
			Quantity:      l.Quantity,
			Price:         l.Price.String(),
		}
	}
	return quotationModel{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		UserID:     q.UserID,
		TotalPrice: q.TotalPrice.String(),
		Status:     string(q.Status),
		Lines:      lines,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func fromQuotationModel(m quotationModel) (entities.Quotation, error) {
	total, err := entities.ParseQuotedPrice(m.TotalPrice)
	if err != nil {
		return entities.Quotation{}, err
	}
	lines := make([]entities.PricedLine, len(m.Lines))
	for i, l := range m.Lines {
		price, err := entities.ParseQuotedPrice(l.Price)
		if err != nil {
			return entities.Quotation{}, err
		}
		lines[i] = entities.PricedLine{
			CatalogItemID: l.CatalogItemID,
			Width:         l.Width,
			Height:        l.Height,
			Quantity:      l.Quantity,
			Price:         price,
		}
	}
	return entities.Quotation{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		UserID:     m.UserID,
		TotalPrice: total,
		Status:     entities.QuotationStatus(m.Status),
		Lines:      lines,
		CreatedAt:  m.CreatedAt.UTC(),
		UpdatedAt:  m.UpdatedAt.UTC(),
	}, nil
}
