package model

type DashboardStats struct {
	TaskStats struct {
		Total      int `json:"total"`
		InProgress int `json:"in_progress"`
		Completed  int `json:"completed"`
		Published  int `json:"published"`
	} `json:"task_stats"`
	EventStats struct {
		Total      int            `json:"total"`
		Upcoming   int            `json:"upcoming"`
		ByPriority map[string]int `json:"by_priority"`
	} `json:"event_stats"`
	IdeaStats struct {
		Total      int            `json:"total"`
		ByPriority map[string]int `json:"by_priority"`
	} `json:"idea_stats"`
	UserStats struct {
		Total int `json:"total"`
	} `json:"user_stats"`
	SystemStats struct {
		CPUUsagePercent float64 `json:"cpu_usage_percent"`
		MemoryUsedMB    uint64  `json:"memory_used_mb"`
	} `json:"system_stats"`
}
