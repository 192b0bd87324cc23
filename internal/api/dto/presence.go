package dto

type PresenceResponse struct {
	Online bool `json:"online"`
}

type SetPresenceRequest struct {
	// Pointer so a missing field is distinguishable from an explicit false.
	Online *bool `json:"online"`
}
