package workstat

import (
	"testing"
	"time"
	"work-tools-backend/models"
	dbmodels "work-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func TestComputeSummary(t *testing.T) {
	t.Run(`пустая выборка`, func(t *testing.T) {
		summary := ComputeSummary(nil)
		require.Equal(t, 0, summary.Total)
		require.Equal(t, 0, summary.CompletionRate)
		require.Equal(t, 0, summary.OnTimeRate)
		require.Empty(t, summary.ByStatus)
		require.Empty(t, summary.ByPriority)
	})

	t.Run(`счетчики и процент выполнения`, func(t *testing.T) {
		due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		items := []dbmodels.WorkItem{
			// выполнено до срока
			{
				BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{UpdatedAt: due.AddDate(0, 0, -1)}},
				Status:         models.WorkItemStatusCompleted,
				Priority:       models.WorkItemPriorityHigh,
				DueDate:        timePtr(due),
			},
			// выполнено после срока
			{
				BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{UpdatedAt: due.AddDate(0, 0, 1)}},
				Status:         models.WorkItemStatusCompleted,
				Priority:       models.WorkItemPriorityLow,
				DueDate:        timePtr(due),
			},
			// выполнено, но срок не был задан
			{
				BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{UpdatedAt: due}},
				Status:         models.WorkItemStatusCompleted,
				Priority:       models.WorkItemPriorityLow,
			},
			{
				Status:   models.WorkItemStatusPending,
				Priority: models.WorkItemPriorityHigh,
			},
		}
		summary := ComputeSummary(items)
		require.Equal(t, 4, summary.Total)
		require.Equal(t, 3, summary.ByStatus[models.WorkItemStatusCompleted])
		require.Equal(t, 1, summary.ByStatus[models.WorkItemStatusPending])
		require.Equal(t, 2, summary.ByPriority[models.WorkItemPriorityHigh])
		require.Equal(t, 75, summary.CompletionRate)
		require.Equal(t, 25, summary.OnTimeRate)
	})

	t.Run(`завершение ровно в срок считается выполнением в срок`, func(t *testing.T) {
		due := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		items := []dbmodels.WorkItem{
			{
				BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{UpdatedAt: due}},
				Status:         models.WorkItemStatusCompleted,
				DueDate:        timePtr(due),
			},
		}
		summary := ComputeSummary(items)
		require.Equal(t, 100, summary.OnTimeRate)
	})
}

func TestComputeCategoryBreakdown(t *testing.T) {
	t.Run(`категории без поручений не включаются`, func(t *testing.T) {
		items := []dbmodels.WorkItem{
			{Category: models.WorkItemCategoryReport},
			{Category: models.WorkItemCategoryReport},
			{Category: models.WorkItemCategoryGeneral},
			{Category: models.WorkItemCategoryMeeting},
		}
		result := ComputeCategoryBreakdown(items)
		require.Len(t, result, 3)
		// порядок следования категорий фиксированный
		require.Equal(t, models.WorkItemCategoryGeneral, result[0].Category)
		require.Equal(t, models.WorkItemCategoryMeeting, result[1].Category)
		require.Equal(t, models.WorkItemCategoryReport, result[2].Category)
		require.Equal(t, 2, result[2].Count)
		require.Equal(t, 50, result[2].Percentage)
		require.Equal(t, "Отчет", result[2].CategoryName)
	})

	t.Run(`пустая выборка`, func(t *testing.T) {
		require.Empty(t, ComputeCategoryBreakdown(nil))
	})
}

func TestComputeUserBreakdown(t *testing.T) {
	users := []dbmodels.SpaceUser{
		{BaseModel: dbmodels.BaseModel{ID: "alice"}, FirstName: "Алиса", LastName: "Иванова"},
		{BaseModel: dbmodels.BaseModel{ID: "bob"}, FirstName: "Борис", LastName: "Петров"},
		{BaseModel: dbmodels.BaseModel{ID: "carol"}, FirstName: "Карина", LastName: "Сидорова"},
	}
	items := []dbmodels.WorkItem{
		{Status: models.WorkItemStatusCompleted, AssigneeID: strPtr("alice")},
		{Status: models.WorkItemStatusPending, AssigneeID: strPtr("bob")},
		{Status: models.WorkItemStatusInProgress, AssigneeID: strPtr("bob")},
		{Status: models.WorkItemStatusCompleted, AssigneeID: strPtr("bob")},
		{Status: models.WorkItemStatusPending, AssigneeID: nil},
	}

	t.Run(`сортировка по убыванию назначенных, без поручений не включаются`, func(t *testing.T) {
		result := ComputeUserBreakdown(items, users)
		require.Len(t, result, 2)
		require.Equal(t, "bob", result[0].UserID)
		require.Equal(t, "Борис Петров", result[0].UserName)
		require.Equal(t, 3, result[0].TotalAssigned)
		require.Equal(t, 1, result[0].CompletedCount)
		require.Equal(t, 1, result[0].PendingCount)
		require.Equal(t, 1, result[0].InProgressCount)
		require.Equal(t, 33, result[0].CompletionRate)

		require.Equal(t, "alice", result[1].UserID)
		require.Equal(t, 1, result[1].TotalAssigned)
		require.Equal(t, 100, result[1].CompletionRate)
	})

	t.Run(`исполнитель вне справочника остается с пустым именем`, func(t *testing.T) {
		orphan := []dbmodels.WorkItem{
			{Status: models.WorkItemStatusPending, AssigneeID: strPtr("ghost")},
		}
		result := ComputeUserBreakdown(orphan, users)
		require.Len(t, result, 1)
		require.Equal(t, "ghost", result[0].UserID)
		require.Equal(t, "", result[0].UserName)
	})
}

func TestComputeMonthlyTrend(t *testing.T) {
	t.Run(`всегда двенадцать строк`, func(t *testing.T) {
		result := ComputeMonthlyTrend(nil, 2025)
		require.Len(t, result, 12)
		for month, row := range result {
			require.Equal(t, month+1, row.Month)
			require.Equal(t, 0, row.Count)
		}
	})

	t.Run(`учитываются только поручения заданного года`, func(t *testing.T) {
		items := []dbmodels.WorkItem{
			{BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}}},
			{BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{CreatedAt: time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)}}},
			{BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{CreatedAt: time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)}}},
			{BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}}},
		}
		result := ComputeMonthlyTrend(items, 2025)
		require.Equal(t, 2, result[2].Count)
		require.Equal(t, 1, result[11].Count)
		require.Equal(t, 0, result[0].Count)
	})
}
