package emi

import (
	"math"
	"testing"
)

func TestCalculateKnownLoan(t *testing.T) {
	res, err := Calculate(Input{Principal: 100000, AnnualRatePercent: 12, Years: 1})
	if err != nil {
		t.Fatal(err)
	}
	// 1% a month over 12 months.
	if math.Abs(res.EMI-8884.878867834166) > 1e-6 {
		t.Errorf("emi = %v", res.EMI)
	}
	if res.Months != 12 {
		t.Errorf("months = %d", res.Months)
	}
	if math.Abs(res.TotalPayment-res.EMI*12) > 1e-9 {
		t.Errorf("total payment = %v", res.TotalPayment)
	}
	if math.Abs(res.TotalInterest-(res.TotalPayment-100000)) > 1e-9 {
		t.Errorf("total interest = %v", res.TotalInterest)
	}
}

func TestZeroRate(t *testing.T) {
	res, err := Calculate(Input{Principal: 120000, AnnualRatePercent: 0, Years: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.EMI != 1000 {
		t.Errorf("emi = %v, want 1000", res.EMI)
	}
	if res.TotalInterest != 0 {
		t.Errorf("interest = %v, want 0", res.TotalInterest)
	}
	if math.IsNaN(res.EMI) || math.IsInf(res.EMI, 0) {
		t.Error("zero rate must not divide by zero")
	}
}

func TestZeroTenure(t *testing.T) {
	res, err := Calculate(Input{Principal: 5000, AnnualRatePercent: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.EMI != 0 || res.Months != 0 || len(res.Schedule) != 0 {
		t.Errorf("unexpected %+v", res)
	}
}

func TestMonotonicInPrincipal(t *testing.T) {
	prev := -1.0
	for _, p := range []float64{1000, 5000, 25000, 100000, 1e6} {
		res, _ := Calculate(Input{Principal: p, AnnualRatePercent: 8.5, Years: 15})
		if !(res.EMI > prev) {
			t.Errorf("emi %v for principal %v not above %v", res.EMI, p, prev)
		}
		prev = res.EMI
	}
}

func TestMonotonicInTenure(t *testing.T) {
	prev := math.Inf(1)
	for _, y := range []float64{1, 2, 5, 10, 20, 30} {
		res, _ := Calculate(Input{Principal: 500000, AnnualRatePercent: 9, Years: y})
		if !(res.EMI < prev) {
			t.Errorf("emi %v for %v years not below %v", res.EMI, y, prev)
		}
		prev = res.EMI
	}
}

func TestScheduleAmortizes(t *testing.T) {
	res, _ := Calculate(Input{Principal: 250000, AnnualRatePercent: 7.2, Months: 30})
	if len(res.Schedule) != 30 {
		t.Fatalf("schedule rows = %d", len(res.Schedule))
	}
	if last := res.Schedule[len(res.Schedule)-1]; last.Balance != 0 {
		t.Errorf("final balance = %v", last.Balance)
	}
	paid, interest := 0.0, 0.0
	for _, row := range res.Schedule {
		paid += row.Principal
		interest += row.Interest
	}
	if math.Abs(paid-250000) > 1e-6 {
		t.Errorf("principal repaid = %v", paid)
	}
	if math.Abs(interest-res.TotalInterest) > 1e-6 {
		t.Errorf("interest %v != total interest %v", interest, res.TotalInterest)
	}
	if len(res.Yearly) != 3 || res.Yearly[2].Year != 3 || res.Yearly[2].Balance != 0 {
		t.Errorf("yearly = %+v", res.Yearly)
	}
	if len(YearPoints(res)) != 3 {
		t.Errorf("year points = %d", len(YearPoints(res)))
	}
}

func TestLongLoanSkipsSchedule(t *testing.T) {
	res, _ := Calculate(Input{Principal: 1000, AnnualRatePercent: 5, Years: 100})
	if res.EMI <= 0 || res.Schedule != nil {
		t.Errorf("unexpected %+v", res)
	}
}

func TestPoints(t *testing.T) {
	res, _ := Calculate(Input{Principal: 1000, AnnualRatePercent: 12, Years: 1})
	pts := Points(res)
	if math.Abs(pts[0].Value-1000) > 1e-9 {
		t.Errorf("principal point = %v", pts[0].Value)
	}
	if len(Lines(res)) != 4 {
		t.Errorf("lines = %d", len(Lines(res)))
	}
}
