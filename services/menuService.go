package services

import (
	"errors"
	"strings"

	"github.com/Kweyu/resto-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuService owns the menu catalog: CRUD plus narrow mutators, with
// case-insensitive name uniqueness across available and unavailable items.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// GetAvailableMenuItems returns available items, optionally filtered by
// category, ordered by category then name.
func (s *MenuService) GetAvailableMenuItems(category *models.Category) ([]models.MenuItem, error) {
	var items []models.MenuItem
	query := s.db.Where("is_available = ?", true)
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Order("category").Order("name").Find(&items).Error; err != nil {
		return nil, persistErr("list menu items", err)
	}
	return items, nil
}

// GetAllMenuItems is the management view: every item, available or not.
func (s *MenuService) GetAllMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Order("category").Order("name").Find(&items).Error; err != nil {
		return nil, persistErr("list menu items", err)
	}
	return items, nil
}

func (s *MenuService) GetMenuItemByID(id int) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistErr("get menu item", err)
	}
	return &item, nil
}

// AddMenuItem assigns id = max existing id + 1 and persists the item. Fails
// with ErrDuplicateName on a case-insensitive name collision.
func (s *MenuService) AddMenuItem(item *models.MenuItem) (*models.MenuItem, error) {
	if item.PreparationMinutes <= 0 {
		item.PreparationMinutes = models.DefaultPreparationMinutes
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		taken, err := nameExists(tx, item.Name, nil)
		if err != nil {
			return persistErr("add menu item", err)
		}
		if taken {
			return ErrDuplicateName
		}
		var maxID int
		if err := tx.Model(&models.MenuItem{}).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error; err != nil {
			return persistErr("add menu item", err)
		}
		item.ID = maxID + 1
		if err := tx.Create(item).Error; err != nil {
			return persistErr("add menu item", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem replaces every mutable field of the item in place.
func (s *MenuService) UpdateMenuItem(item *models.MenuItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.MenuItem
		if err := tx.First(&existing, item.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return persistErr("update menu item", err)
		}
		taken, err := nameExists(tx, item.Name, &item.ID)
		if err != nil {
			return persistErr("update menu item", err)
		}
		if taken {
			return ErrDuplicateName
		}
		existing.Name = item.Name
		existing.Description = item.Description
		existing.Price = item.Price
		existing.Category = item.Category
		existing.IsAvailable = item.IsAvailable
		existing.ImagePath = item.ImagePath
		existing.PreparationMinutes = item.PreparationMinutes
		if err := tx.Save(&existing).Error; err != nil {
			return persistErr("update menu item", err)
		}
		return nil
	})
}

// RemoveMenuItem deletes the item and reports whether it existed. Historical
// orders keep their snapshots and are never touched.
func (s *MenuService) RemoveMenuItem(id int) (bool, error) {
	result := s.db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return false, persistErr("remove menu item", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *MenuService) SetItemAvailability(id int, isAvailable bool) error {
	return s.updateField(id, "is_available", isAvailable)
}

func (s *MenuService) SetItemPrice(id int, price decimal.Decimal) error {
	return s.updateField(id, "price", price)
}

// SetItemName renames the item. Blank input is a no-op, matching the
// management form behavior.
func (s *MenuService) SetItemName(id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	return s.updateField(id, "name", name)
}

func (s *MenuService) updateField(id int, column string, value any) error {
	result := s.db.Model(&models.MenuItem{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return persistErr("update menu item", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func nameExists(tx *gorm.DB, name string, excludeID *int) (bool, error) {
	query := tx.Model(&models.MenuItem{}).Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
