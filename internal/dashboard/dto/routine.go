package dto

// SaveRoutineRequest is the payload for saving one phase of a day's routine.
type SaveRoutineRequest struct {
	Type string            `json:"type"`
	Data map[string]string `json:"data"`
}

// RoutineDay flags which phases of a day's routine have been filled in.
type RoutineDay struct {
	HasPremarket bool `json:"has_premarket"`
	HasPostclose bool `json:"has_postclose"`
}
