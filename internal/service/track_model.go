package service

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/track-server/internal/storage/sqlconfig"
)

// Category is one of the fixed track categories.
type Category string

const (
	CategoryPersonal  Category = "Personal"
	CategoryHobby     Category = "Hobby"
	CategoryTransport Category = "Transport"
	CategoryFood      Category = "Food"
	CategoryInsurance Category = "Insurance"
	CategorySavings   Category = "Savings"
)

var allCategories = []Category{
	CategoryPersonal,
	CategoryHobby,
	CategoryTransport,
	CategoryFood,
	CategoryInsurance,
	CategorySavings,
}

// AllCategories returns every category in display order.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory matches name against the fixed categories, ignoring case.
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Track represents a financial track in the service layer.
type Track struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Category  Category
	Date      *time.Time // nil means no date recorded
	CreatedAt time.Time
}

// TrackCursor identifies a position in a paginated result set.
type TrackCursor struct {
	Position int
	Limit    int
}

func trackFromStorage(row *sqlconfig.Track) Track {
	return Track{
		ID:        row.ID,
		Title:     row.Title,
		Amount:    row.Amount,
		Category:  Category(row.Category),
		Date:      row.Date,
		CreatedAt: row.CreatedAt,
	}
}
