package workitemhandler

import (
	"testing"
	"time"
	"work-tools-backend/models"
	workitemapimodels "work-tools-backend/models/api/workitem"
	dbmodels "work-tools-backend/models/db"

	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func testItems() []dbmodels.WorkItem {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
	}
	return []dbmodels.WorkItem{
		{
			BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "wi-1", CreatedAt: day(1)}},
			Title:          "Собрать отчет",
			Priority:       models.WorkItemPriorityHigh,
			Category:       models.WorkItemCategoryReport,
			Status:         models.WorkItemStatusPending,
			AssignerID:     "boss",
			AssigneeID:     strPtr("alice"),
			DueDate:        timePtr(day(10)),
		},
		{
			BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "wi-2", CreatedAt: day(2)}},
			Title:          "Актуализировать регламент",
			Priority:       models.WorkItemPriorityLow,
			Category:       models.WorkItemCategoryProject,
			Status:         models.WorkItemStatusInProgress,
			AssignerID:     "boss",
			AssigneeID:     strPtr("bob"),
			DueDate:        timePtr(day(5)),
		},
		{
			BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "wi-3", CreatedAt: day(3)}},
			Title:          "Встреча с подрядчиком",
			Priority:       models.WorkItemPriorityUrgent,
			Category:       models.WorkItemCategoryMeeting,
			Status:         models.WorkItemStatusPending,
			AssignerID:     "director",
			AssigneeID:     nil,
			DueDate:        nil,
		},
	}
}

func ids(items []dbmodels.WorkItem) []string {
	result := make([]string, 0, len(items))
	for _, rec := range items {
		result = append(result, rec.ID)
	}
	return result
}

func TestFilter(t *testing.T) {
	items := testItems()

	t.Run(`пустой фильтр возвращает все записи в исходном порядке`, func(t *testing.T) {
		result := Filter(items, workitemapimodels.WorkItemFilter{})
		require.Equal(t, []string{"wi-1", "wi-2", "wi-3"}, ids(result))
	})

	t.Run(`фильтр по статусу`, func(t *testing.T) {
		status := models.WorkItemStatusPending
		result := Filter(items, workitemapimodels.WorkItemFilter{Status: &status})
		require.Equal(t, []string{"wi-1", "wi-3"}, ids(result))
	})

	t.Run(`условия объединяются по И`, func(t *testing.T) {
		status := models.WorkItemStatusPending
		priority := models.WorkItemPriorityHigh
		result := Filter(items, workitemapimodels.WorkItemFilter{Status: &status, Priority: &priority})
		require.Equal(t, []string{"wi-1"}, ids(result))
	})

	t.Run(`фильтр по постановщику`, func(t *testing.T) {
		result := Filter(items, workitemapimodels.WorkItemFilter{AssignerID: "director"})
		require.Equal(t, []string{"wi-3"}, ids(result))
	})

	t.Run(`фильтр по исполнителю`, func(t *testing.T) {
		result := Filter(items, workitemapimodels.WorkItemFilter{AssigneeID: "bob"})
		require.Equal(t, []string{"wi-2"}, ids(result))
	})

	t.Run(`значение unassigned отбирает поручения без исполнителя`, func(t *testing.T) {
		result := Filter(items, workitemapimodels.WorkItemFilter{AssigneeID: models.UnassignedSentinel})
		require.Equal(t, []string{"wi-3"}, ids(result))
	})
}

func TestFilterByDateRange(t *testing.T) {
	items := testItems()
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC)

	t.Run(`без нижней границы фильтр не применяется`, func(t *testing.T) {
		result := FilterByDateRange(items, nil, &to)
		require.Equal(t, []string{"wi-1", "wi-2", "wi-3"}, ids(result))
	})

	t.Run(`без верхней границы фильтр не применяется`, func(t *testing.T) {
		result := FilterByDateRange(items, &from, nil)
		require.Equal(t, []string{"wi-1", "wi-2", "wi-3"}, ids(result))
	})

	t.Run(`границы включаются в диапазон`, func(t *testing.T) {
		exactFrom := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
		exactTo := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)
		result := FilterByDateRange(items, &exactFrom, &exactTo)
		require.Equal(t, []string{"wi-2", "wi-3"}, ids(result))
	})

	t.Run(`вне диапазона пусто`, func(t *testing.T) {
		lateFrom := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		lateTo := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
		result := FilterByDateRange(items, &lateFrom, &lateTo)
		require.Empty(t, result)
	})
}

func TestSort(t *testing.T) {
	items := testItems()

	t.Run(`без поля сортировки порядок не меняется`, func(t *testing.T) {
		result := Sort(items, workitemapimodels.WorkItemSort{})
		require.Equal(t, []string{"wi-1", "wi-2", "wi-3"}, ids(result))
	})

	t.Run(`по приоритету по убыванию`, func(t *testing.T) {
		result := Sort(items, workitemapimodels.WorkItemSort{Field: workitemapimodels.SortFieldPriority, Desc: true})
		require.Equal(t, []string{"wi-3", "wi-1", "wi-2"}, ids(result))
	})

	t.Run(`записи без срока всегда в конце`, func(t *testing.T) {
		asc := Sort(items, workitemapimodels.WorkItemSort{Field: workitemapimodels.SortFieldDueDate})
		require.Equal(t, []string{"wi-2", "wi-1", "wi-3"}, ids(asc))

		desc := Sort(items, workitemapimodels.WorkItemSort{Field: workitemapimodels.SortFieldDueDate, Desc: true})
		require.Equal(t, []string{"wi-1", "wi-2", "wi-3"}, ids(desc))
	})

	t.Run(`исходный список не модифицируется`, func(t *testing.T) {
		before := ids(items)
		_ = Sort(items, workitemapimodels.WorkItemSort{Field: workitemapimodels.SortFieldTitle})
		require.Equal(t, before, ids(items))
	})

	t.Run(`сортировка устойчива при равных значениях`, func(t *testing.T) {
		status := models.WorkItemStatusPending
		equal := []dbmodels.WorkItem{
			{BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "a"}}, Status: status},
			{BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "b"}}, Status: status},
			{BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "c"}}, Status: status},
		}
		result := Sort(equal, workitemapimodels.WorkItemSort{Field: workitemapimodels.SortFieldStatus})
		require.Equal(t, []string{"a", "b", "c"}, ids(result))
	})
}
