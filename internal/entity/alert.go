package entity

import "time"

// AlertCondition is the direction of a price alert.
type AlertCondition string

const (
	AlertConditionAbove AlertCondition = "above"
	AlertConditionBelow AlertCondition = "below"
)

// Alert is a price alert. Alerts are addressed by their position in the
// stored list; deleting one shifts all later indices.
type Alert struct {
	Ticker    string         `json:"ticker"`
	Condition AlertCondition `json:"condition"`
	Price     float64        `json:"price"`
	Created   time.Time      `json:"created"`
	Triggered bool           `json:"triggered"`
}
