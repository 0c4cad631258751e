package emi

import (
	"fmt"
	"math"

	"Buildcalc/internal/calc/quantity"
)

// MaxScheduleMonths bounds the amortization table; longer loans still get
// their EMI and totals.
const MaxScheduleMonths = 600

type Input struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Years             float64 `json:"years"`
	Months            int     `json:"months"` // overrides Years when positive
}

type Row struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type YearRow struct {
	Year      int     `json:"year"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

type Result struct {
	EMI           float64   `json:"emi"`
	Months        int       `json:"months"`
	MonthlyRate   float64   `json:"monthly_rate"`
	TotalPayment  float64   `json:"total_payment"`
	TotalInterest float64   `json:"total_interest"`
	Schedule      []Row     `json:"schedule,omitempty"`
	Yearly        []YearRow `json:"yearly,omitempty"`
}

// Payment is the equated monthly installment P·r·(1+r)^n / ((1+r)^n − 1).
// At r = 0 it is P/n; with no months it is 0.
func Payment(principal, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	n := float64(months)
	if monthlyRate == 0 {
		return principal / n
	}
	f := math.Pow(1+monthlyRate, n)
	return principal * monthlyRate * f / (f - 1)
}

func Calculate(in Input) (Result, error) {
	p := quantity.Clean(in.Principal)
	r := quantity.Clean(in.AnnualRatePercent) / 1200
	n := in.Months
	if n <= 0 {
		n = int(math.Round(quantity.Clean(in.Years) * 12))
	}
	if n <= 0 {
		return Result{MonthlyRate: r}, nil
	}

	emi := Payment(p, r, n)
	total := emi * float64(n)
	res := Result{
		EMI:           emi,
		Months:        n,
		MonthlyRate:   r,
		TotalPayment:  total,
		TotalInterest: total - p,
	}
	if n <= MaxScheduleMonths {
		res.Schedule, res.Yearly = amortize(p, r, n, emi)
	}
	return res, nil
}

func amortize(p, r float64, n int, emi float64) ([]Row, []YearRow) {
	rows := make([]Row, 0, n)
	years := make([]YearRow, 0, (n+11)/12)
	balance := p
	var year YearRow
	for m := 1; m <= n; m++ {
		interest := balance * r
		principal := emi - interest
		balance -= principal
		if m == n || math.Abs(balance) < 1e-6 {
			balance = 0
		}
		rows = append(rows, Row{Month: m, Payment: emi, Principal: principal, Interest: interest, Balance: balance})

		year.Year = (m-1)/12 + 1
		year.Principal += principal
		year.Interest += interest
		year.Balance = balance
		if m%12 == 0 || m == n {
			years = append(years, year)
			year = YearRow{}
		}
	}
	return rows, years
}

func Lines(res Result) []quantity.Line {
	return []quantity.Line{
		{Label: "Monthly EMI", Quantity: res.EMI},
		{Label: "Tenure", Quantity: float64(res.Months), Unit: "months"},
		{Label: "Total interest", Quantity: res.TotalInterest},
		{Label: "Total payment", Quantity: res.TotalPayment},
	}
}

// Points splits the total payment into principal and interest.
func Points(res Result) []quantity.Point {
	return []quantity.Point{
		{Label: "Principal", Value: res.TotalPayment - res.TotalInterest},
		{Label: "Interest", Value: res.TotalInterest},
	}
}

// YearPoints charts the outstanding balance at each year end.
func YearPoints(res Result) []quantity.Point {
	out := make([]quantity.Point, 0, len(res.Yearly))
	for _, y := range res.Yearly {
		out = append(out, quantity.Point{Label: fmt.Sprintf("Year %d", y.Year), Value: y.Balance})
	}
	return out
}
