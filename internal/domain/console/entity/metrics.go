package entity

// HostingerMetrics mirrors the VPS gauges the NOC console renders. Percent
// gauges are 0-100, traffic is Mbps.
type HostingerMetrics struct {
	CPU        int     `json:"cpu"`
	Memory     int     `json:"memory"`
	Disk       int     `json:"disk"`
	Bandwidth  int     `json:"bandwidth"`
	TrafficIn  float64 `json:"trafficIn"`
	TrafficOut float64 `json:"trafficOut"`
}

// N8NMetrics mirrors the workflow-engine counters the console renders
type N8NMetrics struct {
	ProdExecutions    int     `json:"prodExecutions"`
	FailedExecutions  int     `json:"failedExecutions"`
	FailureRate       float64 `json:"failureRate"`
	AvgRuntimeSeconds float64 `json:"avgRuntimeSeconds"`
	TimeSavedHours    int     `json:"timeSavedHours"`
}

// Metrics is the console payload
type Metrics struct {
	Status    string           `json:"status"`
	Hostinger HostingerMetrics `json:"hostinger"`
	N8N       N8NMetrics       `json:"n8n"`
}
