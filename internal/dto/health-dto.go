package dto

type HealthDTO struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type ComponentStatusDTO struct {
	Status string `json:"status"`
}

type ActuatorHealthDTO struct {
	Status     string                        `json:"status"`
	Components map[string]ComponentStatusDTO `json:"components"`
}
