package domain

// Structured result of a payment evaluation for a single day.
// ExpectedTotal always equals BasePay + BonusTotal. A Breakdown is
// computed fresh per call; it has no persisted lifecycle.
type Breakdown struct {
	BasePay       Pence
	BonusTotal    Pence
	ExpectedTotal Pence
}
