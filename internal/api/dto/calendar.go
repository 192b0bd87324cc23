package dto

type CalendarDayResponse struct {
	Date               string   `json:"date"`
	DayKind            string   `json:"day_kind"`
	Consignments       int      `json:"consignments"`
	BasePayPence       int64    `json:"base_pay_pence"`
	BonusTotalPence    int64    `json:"bonus_total_pence"`
	ExpectedTotalPence int64    `json:"expected_total_pence"`
	Notes              []string `json:"notes"`
}

type CalendarResponse struct {
	Year            int                   `json:"year"`
	Month           int                   `json:"month"`
	MonthTotalPence int64                 `json:"month_total_pence"`
	MonthTotal      string                `json:"month_total"`
	Days            []CalendarDayResponse `json:"days"`
}
