package workitemapimodels

import (
	"testing"
	"time"
	"work-tools-backend/models"

	"github.com/stretchr/testify/require"
)

func TestWorkItemDataValidate(t *testing.T) {
	valid := WorkItemData{
		Title:    "Подготовить отчет",
		Priority: models.WorkItemPriorityNormal,
		Category: models.WorkItemCategoryReport,
		DueDate:  "31.12.2025",
	}

	t.Run(`корректные данные`, func(t *testing.T) {
		require.Nil(t, valid.Validate())
	})

	t.Run(`название обязательно`, func(t *testing.T) {
		data := valid
		data.Title = "   "
		require.NotNil(t, data.Validate())
	})

	t.Run(`срок исполнения обязателен`, func(t *testing.T) {
		data := valid
		data.DueDate = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`формат дат ДД.ММ.ГГГГ`, func(t *testing.T) {
		data := valid
		data.DueDate = "2025-12-31"
		require.NotNil(t, data.Validate())

		data = valid
		data.StartDate = "12/01/2025"
		require.NotNil(t, data.Validate())

		data = valid
		data.StartDate = "01.12.2025"
		require.Nil(t, data.Validate())
		start := data.GetStartDate()
		require.NotNil(t, start)
		require.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), *start)
	})

	t.Run(`неизвестные приоритет и категория`, func(t *testing.T) {
		data := valid
		data.Priority = "critical"
		require.NotNil(t, data.Validate())

		data = valid
		data.Category = "misc"
		require.NotNil(t, data.Validate())
	})
}

func TestWorkItemFilterValidate(t *testing.T) {
	t.Run(`пустой фильтр корректен`, func(t *testing.T) {
		require.Nil(t, WorkItemFilter{}.Validate())
	})

	t.Run(`неизвестное поле сортировки`, func(t *testing.T) {
		filter := WorkItemFilter{Sort: WorkItemSort{Field: "assignee_name"}}
		require.NotNil(t, filter.Validate())
	})

	t.Run(`некорректные даты`, func(t *testing.T) {
		require.NotNil(t, WorkItemFilter{DateFrom: "31-12-2025"}.Validate())
		require.NotNil(t, WorkItemFilter{DateTo: "31-12-2025"}.Validate())
		require.Nil(t, WorkItemFilter{DateFrom: "01.01.2025", DateTo: "31.12.2025"}.Validate())
	})
}
