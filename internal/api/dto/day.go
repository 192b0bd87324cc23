package dto

type UpsertDayRequest struct {
	Date         string `json:"date"`
	Consignments int    `json:"consignments"`
}

type UpsertDayResponse struct {
	Date         string `json:"date"`
	Consignments int    `json:"consignments"`
}
