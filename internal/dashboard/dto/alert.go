package dto

// CreateAlertRequest is the payload for adding a price alert.
type CreateAlertRequest struct {
	Ticker    string  `json:"ticker"`
	Condition string  `json:"condition"`
	Price     float64 `json:"price"`
}

// DeleteAlertResponse reports the alert removed by a delete.
type DeleteAlertResponse struct {
	Deleted interface{} `json:"deleted"`
}
