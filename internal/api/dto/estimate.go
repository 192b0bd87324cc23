package dto

type EstimateRequest struct {
	Date         string `json:"date"`
	Consignments int    `json:"consignments"`
}

type EstimateResponse struct {
	Date               string `json:"date"`
	DayKind            string `json:"day_kind"`
	Consignments       int    `json:"consignments"`
	BasePayPence       int64  `json:"base_pay_pence"`
	BonusTotalPence    int64  `json:"bonus_total_pence"`
	ExpectedTotalPence int64  `json:"expected_total_pence"`
	ExpectedTotal      string `json:"expected_total"`
}
