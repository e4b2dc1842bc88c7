package seeding

import (
	"time"

	"github.com/vfg2006/invoices-api/internal/domain"
)

const (
	customerEvilRabbit     = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"
	customerDelbaOliveira  = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	customerLeeRobinson    = "3958dc9e-742f-4377-85e9-fec4b6a6442a"
	customerMichaelNovotny = "76d65c26-f784-44a2-ac19-586678f7c2f2"
	customerAmyBurns       = "cc27c14a-0acf-4f4a-a6c9-d45682c144b9"
	customerBalazsOrban    = "13d07535-c59e-4157-a011-f8d2ef4e0cbb"
)

// PlaceholderDataset devolve uma cópia nova do dataset de demonstração.
// Valores de faturas em centavos.
func PlaceholderDataset() domain.SeedDataset {
	return domain.SeedDataset{
		Users: []domain.User{
			{
				ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
				Name:     "User",
				Email:    "user@nextmail.com",
				Password: "123456",
			},
		},
		Customers: []domain.Customer{
			{ID: customerEvilRabbit, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
			{ID: customerDelbaOliveira, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
			{ID: customerLeeRobinson, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
			{ID: customerMichaelNovotny, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
			{ID: customerAmyBurns, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
			{ID: customerBalazsOrban, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
		},
		Invoices: []domain.Invoice{
			{CustomerID: customerEvilRabbit, Amount: 15795, Status: domain.InvoiceStatusPending, Date: date(2022, 12, 6)},
			{CustomerID: customerDelbaOliveira, Amount: 20348, Status: domain.InvoiceStatusPending, Date: date(2022, 11, 14)},
			{CustomerID: customerAmyBurns, Amount: 3040, Status: domain.InvoiceStatusPaid, Date: date(2022, 10, 29)},
			{CustomerID: customerMichaelNovotny, Amount: 44800, Status: domain.InvoiceStatusPaid, Date: date(2023, 9, 10)},
			{CustomerID: customerBalazsOrban, Amount: 34577, Status: domain.InvoiceStatusPending, Date: date(2023, 8, 5)},
			{CustomerID: customerLeeRobinson, Amount: 54246, Status: domain.InvoiceStatusPending, Date: date(2023, 7, 16)},
			{CustomerID: customerEvilRabbit, Amount: 666, Status: domain.InvoiceStatusPending, Date: date(2023, 6, 27)},
			{CustomerID: customerMichaelNovotny, Amount: 32545, Status: domain.InvoiceStatusPaid, Date: date(2023, 6, 9)},
			{CustomerID: customerAmyBurns, Amount: 1250, Status: domain.InvoiceStatusPaid, Date: date(2023, 6, 17)},
			{CustomerID: customerBalazsOrban, Amount: 8546, Status: domain.InvoiceStatusPaid, Date: date(2023, 6, 7)},
			{CustomerID: customerDelbaOliveira, Amount: 500, Status: domain.InvoiceStatusPaid, Date: date(2023, 8, 19)},
			{CustomerID: customerBalazsOrban, Amount: 8945, Status: domain.InvoiceStatusPaid, Date: date(2023, 6, 3)},
			{CustomerID: customerLeeRobinson, Amount: 1000, Status: domain.InvoiceStatusPaid, Date: date(2022, 6, 5)},
		},
		Revenue: []domain.Revenue{
			{Month: "Jan", Revenue: 2000},
			{Month: "Feb", Revenue: 1800},
			{Month: "Mar", Revenue: 2200},
			{Month: "Apr", Revenue: 2500},
			{Month: "May", Revenue: 2300},
			{Month: "Jun", Revenue: 3200},
			{Month: "Jul", Revenue: 3500},
			{Month: "Aug", Revenue: 3700},
			{Month: "Sep", Revenue: 2500},
			{Month: "Oct", Revenue: 2800},
			{Month: "Nov", Revenue: 3000},
			{Month: "Dec", Revenue: 4800},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
