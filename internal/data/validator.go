package data

import (
	"fmt"
)

type DataValidator struct{}

func NewDataValidator() *DataValidator {
	return &DataValidator{}
}

// ValidateFilms checks the post-cleaning invariants: every currency field is a
// non-negative finite number and Profit matches worldwide minus budget. A
// violation is fatal to the run; nothing negative may reach later stages.
func (dv *DataValidator) ValidateFilms(films []Film) error {
	if len(films) == 0 {
		return fmt.Errorf("dataset is empty")
	}

	for i, f := range films {
		if f.ProductionBudget.IsNegative() {
			return fmt.Errorf("film %d (%s): negative production budget %s", i, f.Title, f.ProductionBudget)
		}
		if f.DomesticGross.IsNegative() {
			return fmt.Errorf("film %d (%s): negative domestic gross %s", i, f.Title, f.DomesticGross)
		}
		if f.WorldwideGross.IsNegative() {
			return fmt.Errorf("film %d (%s): negative worldwide gross %s", i, f.Title, f.WorldwideGross)
		}
		if !f.Profit.Equal(f.WorldwideGross.Sub(f.ProductionBudget)) {
			return fmt.Errorf("film %d (%s): profit does not match gross minus budget", i, f.Title)
		}
	}

	return nil
}
