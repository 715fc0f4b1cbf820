package models

import "github.com/jackc/pgx/v5/pgtype"

// Book is a row of the books table. Money columns stay pgtype.Numeric until
// mapping so NaN and infinities can be rejected.
type Book struct {
	BookID          string         `db:"book_id"`
	OwnerID         string         `db:"owner_id"`
	Title           string         `db:"title"`
	Author          string         `db:"author"`
	ISBN            string         `db:"isbn"`
	Stock           int64          `db:"stock"`
	Price           pgtype.Numeric `db:"price"`
	ProductionPrice pgtype.Numeric `db:"production_price"`
	AuditFields
}

// Customer is a row of the customers table.
type Customer struct {
	CustomerID string `db:"customer_id"`
	OwnerID    string `db:"owner_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	AuditFields
}

// Settings is a row of the settings table.
type Settings struct {
	OwnerID           string             `db:"owner_id"`
	OpeningCash       pgtype.Numeric     `db:"opening_cash"`
	OpeningBank       pgtype.Numeric     `db:"opening_bank"`
	OpeningStockValue pgtype.Numeric     `db:"opening_stock_value"`
	ReferenceDate     pgtype.Timestamptz `db:"reference_date"`
	OfficeAssetsValue pgtype.Numeric     `db:"office_assets_value"`
	CurrencyCode      string             `db:"currency_code"`
	AuditFields
}
