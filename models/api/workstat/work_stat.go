package workstatapimodels

import (
	"work-tools-backend/models"
)

type SummaryView struct {
	Total          int                              `json:"total"`           // всего поручений
	ByStatus       map[models.WorkItemStatus]int    `json:"by_status"`       // количество по статусам
	ByPriority     map[models.WorkItemPriority]int  `json:"by_priority"`     // количество по приоритетам
	CompletionRate int                              `json:"completion_rate"` // % выполненных, 0 при пустой выборке
	OnTimeRate     int                              `json:"on_time_rate"`    // % выполненных в срок, 0 при пустой выборке
}

type CategoryBreakdownRow struct {
	Category     models.WorkItemCategory `json:"category"`
	CategoryName string                  `json:"category_name"`
	Count        int                     `json:"count"`
	Percentage   int                     `json:"percentage"`
}

type UserBreakdownRow struct {
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	TotalAssigned   int    `json:"total_assigned"`
	CompletedCount  int    `json:"completed_count"`
	PendingCount    int    `json:"pending_count"`
	InProgressCount int    `json:"in_progress_count"`
	CompletionRate  int    `json:"completion_rate"`
}

type MonthlyTrendRow struct {
	Month int `json:"month"` // номер месяца 1-12
	Count int `json:"count"`
}
