// Package services provides domain services that work across several
// aggregates instead of belonging to one of them.
//
// The package includes:
//   - PageTotalsCalculator: folds a page of delivery jobs into count, income and cost sums
package services
