package workstat

import (
	"math"
	"sort"
	"work-tools-backend/models"
	workstatapimodels "work-tools-backend/models/api/workstat"
	dbmodels "work-tools-backend/models/db"
)

// Агрегатор пересчитывает показатели по всей выборке при каждом вызове,
// без кэширования и инкрементальных обновлений.

func ComputeSummary(items []dbmodels.WorkItem) workstatapimodels.SummaryView {
	result := workstatapimodels.SummaryView{
		Total:      len(items),
		ByStatus:   map[models.WorkItemStatus]int{},
		ByPriority: map[models.WorkItemPriority]int{},
	}
	onTime := 0
	for _, rec := range items {
		result.ByStatus[rec.Status]++
		result.ByPriority[rec.Priority]++
		if isOnTimeCompleted(rec) {
			onTime++
		}
	}
	result.CompletionRate = percentage(result.ByStatus[models.WorkItemStatusCompleted], result.Total)
	result.OnTimeRate = percentage(onTime, result.Total)
	return result
}

// выполнено в срок: статус completed и момент завершения не позже срока исполнения;
// поручение без срока исполнения в срок не попадает никогда
func isOnTimeCompleted(rec dbmodels.WorkItem) bool {
	if rec.Status != models.WorkItemStatusCompleted {
		return false
	}
	if rec.DueDate == nil {
		return false
	}
	return !rec.UpdatedAt.After(*rec.DueDate)
}

func ComputeCategoryBreakdown(items []dbmodels.WorkItem) []workstatapimodels.CategoryBreakdownRow {
	counts := map[models.WorkItemCategory]int{}
	for _, rec := range items {
		counts[rec.Category]++
	}
	result := make([]workstatapimodels.CategoryBreakdownRow, 0, len(counts))
	// категории без поручений не включаются в результат
	for _, category := range models.WorkItemCategories {
		count := counts[category]
		if count == 0 {
			continue
		}
		result = append(result, workstatapimodels.CategoryBreakdownRow{
			Category:     category,
			CategoryName: category.ToHuman(),
			Count:        count,
			Percentage:   percentage(count, len(items)),
		})
	}
	return result
}

func ComputeUserBreakdown(items []dbmodels.WorkItem, users []dbmodels.SpaceUser) []workstatapimodels.UserBreakdownRow {
	rows := map[string]*workstatapimodels.UserBreakdownRow{}
	order := []string{}
	for _, rec := range items {
		if rec.AssigneeID == nil {
			continue
		}
		userID := *rec.AssigneeID
		row, ok := rows[userID]
		if !ok {
			row = &workstatapimodels.UserBreakdownRow{UserID: userID}
			rows[userID] = row
			order = append(order, userID)
		}
		row.TotalAssigned++
		switch rec.Status {
		case models.WorkItemStatusCompleted:
			row.CompletedCount++
		case models.WorkItemStatusPending:
			row.PendingCount++
		case models.WorkItemStatusInProgress:
			row.InProgressCount++
		}
	}

	namesByID := map[string]string{}
	for _, user := range users {
		namesByID[user.ID] = user.GetFullName()
	}

	result := make([]workstatapimodels.UserBreakdownRow, 0, len(rows))
	for _, userID := range order {
		row := rows[userID]
		row.UserName = namesByID[userID]
		row.CompletionRate = percentage(row.CompletedCount, row.TotalAssigned)
		result = append(result, *row)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalAssigned > result[j].TotalAssigned
	})
	return result
}

// ComputeMonthlyTrend всегда возвращает 12 строк, по одной на каждый месяц года
func ComputeMonthlyTrend(items []dbmodels.WorkItem, year int) []workstatapimodels.MonthlyTrendRow {
	result := make([]workstatapimodels.MonthlyTrendRow, 12)
	for month := 0; month < 12; month++ {
		result[month] = workstatapimodels.MonthlyTrendRow{Month: month + 1}
	}
	for _, rec := range items {
		if rec.CreatedAt.Year() != year {
			continue
		}
		result[int(rec.CreatedAt.Month())-1].Count++
	}
	return result
}

func percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}
