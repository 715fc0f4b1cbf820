package ledger_test

import (
	"math"
	"time"

	"github.com/SscSPs/bookstore_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func book(id string, stock int64, price, cost int64) domain.Book {
	return domain.Book{BookID: id, Title: "Title " + id, Stock: stock, Price: dec(price), ProductionPrice: dec(cost)}
}

// sale builds a single-item sale whose total matches its item.
func sale(id, customerID string, method domain.PaymentMethod, date time.Time, bookID string, qty, price int64) domain.Sale {
	item := domain.SaleItem{BookID: bookID, Quantity: qty, Price: dec(price)}
	return domain.Sale{
		SaleID:        id,
		Date:          date,
		CustomerID:    customerID,
		PaymentMethod: method,
		Items:         []domain.SaleItem{item},
		Total:         item.Subtotal(),
	}
}

func receivable(id, customerID, saleID string, amount int64, status domain.TransactionStatus, method domain.PaymentMethod) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Type:          domain.Receivable,
		Description:   "Payment from customer " + customerID,
		Amount:        dec(amount),
		Status:        status,
		CustomerID:    customerID,
		SaleID:        saleID,
		PaymentMethod: method,
	}
}

func nan() float64 {
	return math.NaN()
}

func inf(sign int) float64 {
	return math.Inf(sign)
}
