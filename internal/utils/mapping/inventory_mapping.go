package mapping

import (
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/SscSPs/bookstore_manager/internal/models"
)

// ToDomainBook converts a model Book to a domain Book
func ToDomainBook(m models.Book) (domain.Book, error) {
	var d decimals
	b := domain.Book{
		BookID:          m.BookID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Author:          m.Author,
		ISBN:            m.ISBN,
		Stock:           m.Stock,
		Price:           d.get("books.price", m.Price),
		ProductionPrice: d.get("books.production_price", m.ProductionPrice),
		AuditFields:     domain.AuditFields(m.AuditFields),
	}
	return b, d.err
}

// ToDomainBookSlice converts model books, failing on the first bad row.
func ToDomainBookSlice(ms []models.Book) ([]domain.Book, error) {
	books := make([]domain.Book, 0, len(ms))
	for _, m := range ms {
		b, err := ToDomainBook(m)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

// ToDomainCustomer converts a model Customer to a domain Customer.
// DueBalance is left zero for the caller to fill.
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		AuditFields: domain.AuditFields(m.AuditFields),
	}
}

// ToDomainSettings converts a model Settings to a domain Settings
func ToDomainSettings(m models.Settings) (domain.Settings, error) {
	var d decimals
	var ref time.Time
	if m.ReferenceDate.Valid {
		ref = m.ReferenceDate.Time
	}
	s := domain.Settings{
		OwnerID: m.OwnerID,
		Opening: domain.OpeningBalances{
			Cash:          d.get("settings.opening_cash", m.OpeningCash),
			Bank:          d.get("settings.opening_bank", m.OpeningBank),
			StockValue:    d.get("settings.opening_stock_value", m.OpeningStockValue),
			ReferenceDate: ref,
		},
		OfficeAssetsValue: d.get("settings.office_assets_value", m.OfficeAssetsValue),
		CurrencyCode:      m.CurrencyCode,
		AuditFields:       domain.AuditFields(m.AuditFields),
	}
	return s, d.err
}
