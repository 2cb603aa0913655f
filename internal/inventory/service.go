// Package inventory implements the five inventory operations on top of
// the store. Every operation runs as a single transaction so concurrent
// invocations against the shared store file never observe partial writes.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clothing-inventory/internal/store"
)

// defaultSizes is applied when add_item is called without a sizes mapping.
var defaultSizes = map[string]int{"S": 0, "M": 0, "L": 0}

// Service executes inventory operations against the embedded store.
type Service struct {
	db *gorm.DB
}

// NewService wraps an opened store handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AddItemInput carries the add_item parameters. ID zero means
// auto-assign; a caller-supplied ID that already exists is a conflict.
type AddItemInput struct {
	ID          int64
	Name        string
	Category    string
	Price       float64
	Description string
	Sizes       map[string]int
}

// AddItem validates the input and inserts one item row plus one stock
// row per size in a single transaction.
func (s *Service) AddItem(ctx context.Context, in AddItemInput) (*store.Item, error) {
	if err := validateAddItem(in); err != nil {
		return nil, err
	}

	sizes := in.Sizes
	if len(sizes) == 0 {
		sizes = defaultSizes
	}

	item := &store.Item{
		ID:          in.ID,
		Name:        in.Name,
		Category:    in.Category,
		Price:       decimal.NewFromFloat(in.Price),
		Description: in.Description,
	}
	for _, label := range sortedLabels(sizes) {
		item.Sizes = append(item.Sizes, store.SizeQuantity{Size: label, Quantity: sizes[label]})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.ID != 0 {
			var count int64
			if err := tx.Model(&store.Item{}).Where("id = ?", item.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("check item id: %w", err)
			}
			if count > 0 {
				return fmt.Errorf("%w: item %d", ErrConflict, item.ID)
			}
		}
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListOptions bounds a get_inventory call. Zero values mean unbounded.
type ListOptions struct {
	Limit  int
	Offset int
}

// ListInventory returns all items with their stock rows, ordered by id
// for deterministic output.
func (s *Service) ListInventory(ctx context.Context, opts ListOptions) ([]store.Item, error) {
	var items []store.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Preload("Sizes").Order("id")
		if opts.Limit > 0 {
			q = q.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			q = q.Offset(opts.Offset)
		}
		if err := q.Find(&items).Error; err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns the item with the given id and its stock rows.
func (s *Service) GetItem(ctx context.Context, id int64) (*store.Item, error) {
	var item store.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Sizes").First(&item, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: item %d", ErrNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchItems returns items whose name or category contains query,
// case-insensitively. An empty query matches every item, mirroring
// substring semantics. Limit zero means unbounded.
func (s *Service) SearchItems(ctx context.Context, query string, limit int) ([]store.Item, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	var items []store.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Preload("Sizes").
			Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(category) LIKE ? ESCAPE '\'`, pattern, pattern).
			Order("id")
		if limit > 0 {
			q = q.Limit(limit)
		}
		if err := q.Find(&items).Error; err != nil {
			return fmt.Errorf("search items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets the stock count for one (item, size) pair. The row
// is created when the size label is known but not yet stocked for the
// item, so the operation is an upsert. Exactly one row changes per call.
func (s *Service) UpdateQuantity(ctx context.Context, itemID int64, size string, quantity int) (*store.SizeQuantity, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if !store.ValidSize(size) {
		return nil, fmt.Errorf("%w: size %q", ErrNotFound, size)
	}

	var row store.SizeQuantity
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&store.Item{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
			return fmt.Errorf("check item: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
		}

		err := tx.Where("item_id = ? AND size = ?", itemID, size).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = store.SizeQuantity{ItemID: itemID, Size: size, Quantity: quantity}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create stock row: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("load stock row: %w", err)
		}

		if err := tx.Model(&row).Update("quantity", quantity).Error; err != nil {
			return fmt.Errorf("update stock row: %w", err)
		}
		row.Quantity = quantity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func validateAddItem(in AddItemInput) error {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "name must not be empty")
	}
	if strings.TrimSpace(in.Category) == "" {
		problems = append(problems, "category must not be empty")
	}
	if in.Price < 0 {
		problems = append(problems, "price must not be negative")
	}
	if in.ID < 0 {
		problems = append(problems, "id must not be negative")
	}
	for _, label := range sortedLabels(in.Sizes) {
		if !store.ValidSize(label) {
			problems = append(problems, fmt.Sprintf("unknown size %q", label))
		}
		if in.Sizes[label] < 0 {
			problems = append(problems, fmt.Sprintf("quantity for size %q must not be negative", label))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, ", "))
	}
	return nil
}

// sortedLabels fixes map iteration order so inserts and error messages
// are deterministic.
func sortedLabels(sizes map[string]int) []string {
	labels := make([]string, 0, len(sizes))
	for label := range sizes {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
