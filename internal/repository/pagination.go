package repository

import (
	"gorm.io/gorm"
)

// PerPage is the fixed page size of every listing.
const PerPage = 10

// Page is one page of a filtered listing. Out-of-range pages have no items.
type Page[T any] struct {
	Items       []T
	Total       int64
	CurrentPage int
	TotalPages  int
}

// Scope narrows or decorates a query.
type Scope func(*gorm.DB) *gorm.DB

// TotalPages returns the number of pages needed for total rows.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// paginate counts rows matching filter and loads the requested page. find is
// applied to the item query only (ordering, preloads).
func paginate[T any](db *gorm.DB, page, perPage int, filter, find Scope) (*Page[T], error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Model(new(T)).Scopes(filter).Count(&total).Error; err != nil {
		return nil, err
	}

	result := &Page[T]{
		Items:       make([]T, 0, perPage),
		Total:       total,
		CurrentPage: page,
		TotalPages:  TotalPages(total, perPage),
	}
	if page > result.TotalPages {
		return result, nil
	}

	if err := db.Session(&gorm.Session{}).
		Scopes(filter, find).
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&result.Items).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// containing filters column by case-sensitive substring when keywords is set.
// MySQL compares with the column collation, which is case-insensitive by
// default, so the column is cast to binary there.
func containing(column, keywords string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if keywords == "" {
			return db
		}
		if db.Dialector.Name() == "mysql" {
			return db.Where("INSTR(BINARY "+column+", ?) > 0", keywords)
		}
		return db.Where("INSTR("+column+", ?) > 0", keywords)
	}
}
