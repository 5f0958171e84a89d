package services

import (
	"logistics/internal/core/domain/model/job"
	"logistics/internal/core/domain/model/kernel"
)

// PageTotals is the aggregate of exactly the jobs that were returned on one page.
type PageTotals struct {
	Count  int
	Income kernel.Money
	Cost   kernel.Money
}

// PageTotalsCalculator sums the jobs of a page after they were fetched.
// It never looks beyond the slice it is given, so totals change with the
// page size and cursor.
//
// Example usage:
//
//	totals, err := services.NewPageTotalsCalculator().Calculate(page)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(totals.Count, totals.Income, totals.Cost)
type PageTotalsCalculator struct{}

func NewPageTotalsCalculator() PageTotalsCalculator {
	return PageTotalsCalculator{}
}

// Calculate returns zero totals for an empty page. Every job must be valid.
func (PageTotalsCalculator) Calculate(jobs []*job.Job) (PageTotals, error) {
	totals := PageTotals{
		Income: kernel.ZeroMoney(),
		Cost:   kernel.ZeroMoney(),
	}

	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return PageTotals{}, err
		}

		totals.Count++
		totals.Income = totals.Income.Add(j.Income())
		totals.Cost = totals.Cost.Add(j.Cost())
	}

	return totals, nil
}
