package dto

type RateTableResponse struct {
	WeekdayRatePence     int64 `json:"weekday_rate_pence"`
	SaturdayRatePence    int64 `json:"saturday_rate_pence"`
	EarlyBonusPence      int64 `json:"early_bonus_pence"`
	AttendanceBonusPence int64 `json:"attendance_bonus_pence"`
	UnloadingBonusPence  int64 `json:"unloading_bonus_pence"`
}

type SaveRateTableRequest struct {
	WeekdayRatePence     int64 `json:"weekday_rate_pence"`
	SaturdayRatePence    int64 `json:"saturday_rate_pence"`
	EarlyBonusPence      int64 `json:"early_bonus_pence"`
	AttendanceBonusPence int64 `json:"attendance_bonus_pence"`
	UnloadingBonusPence  int64 `json:"unloading_bonus_pence"`
}
