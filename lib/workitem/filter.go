package workitemhandler

import (
	"sort"
	"strings"
	"time"
	"work-tools-backend/models"
	workitemapimodels "work-tools-backend/models/api/workitem"
	dbmodels "work-tools-backend/models/db"
)

// Filter отбирает записи по условиям, объединённым по "И".
// Порядок исходного списка сохраняется.
func Filter(items []dbmodels.WorkItem, f workitemapimodels.WorkItemFilter) []dbmodels.WorkItem {
	result := make([]dbmodels.WorkItem, 0, len(items))
	for _, rec := range items {
		if f.Status != nil && rec.Status != *f.Status {
			continue
		}
		if f.Priority != nil && rec.Priority != *f.Priority {
			continue
		}
		if f.Category != nil && rec.Category != *f.Category {
			continue
		}
		if f.AssignerID != "" && rec.AssignerID != f.AssignerID {
			continue
		}
		if !matchAssignee(rec, f.AssigneeID) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

func matchAssignee(rec dbmodels.WorkItem, assigneeID string) bool {
	if assigneeID == "" {
		return true
	}
	if assigneeID == models.UnassignedSentinel {
		return rec.AssigneeID == nil
	}
	return rec.AssigneeID != nil && *rec.AssigneeID == assigneeID
}

// FilterByDateRange отбирает записи с датой создания в диапазоне [from, to] включительно.
// Если любая из границ не задана - фильтр не применяется и список возвращается как есть.
func FilterByDateRange(items []dbmodels.WorkItem, from, to *time.Time) []dbmodels.WorkItem {
	if from == nil || to == nil {
		return items
	}
	result := make([]dbmodels.WorkItem, 0, len(items))
	for _, rec := range items {
		if rec.CreatedAt.Before(*from) || rec.CreatedAt.After(*to) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

// Sort - устойчивая сортировка по одному полю.
// Записи без значения поля всегда идут после записей со значением,
// независимо от направления сортировки.
func Sort(items []dbmodels.WorkItem, by workitemapimodels.WorkItemSort) []dbmodels.WorkItem {
	if by.Field == "" {
		return items
	}
	result := make([]dbmodels.WorkItem, len(items))
	copy(result, items)
	sort.SliceStable(result, func(i, j int) bool {
		return sortLess(result[i], result[j], by)
	})
	return result
}

func sortLess(a, b dbmodels.WorkItem, by workitemapimodels.WorkItemSort) bool {
	switch by.Field {
	case workitemapimodels.SortFieldCreatedAt:
		return timeLess(a.CreatedAt, b.CreatedAt, by.Desc)
	case workitemapimodels.SortFieldDueDate:
		return timePtrLess(a.DueDate, b.DueDate, by.Desc)
	case workitemapimodels.SortFieldStartDate:
		return timePtrLess(a.StartDate, b.StartDate, by.Desc)
	case workitemapimodels.SortFieldPriority:
		return intLess(a.Priority.Rank(), b.Priority.Rank(), by.Desc)
	case workitemapimodels.SortFieldStatus:
		return stringLess(string(a.Status), string(b.Status), by.Desc)
	case workitemapimodels.SortFieldTitle:
		return stringLess(a.Title, b.Title, by.Desc)
	case workitemapimodels.SortFieldCategory:
		return stringLess(string(a.Category), string(b.Category), by.Desc)
	}
	return false
}

func timeLess(a, b time.Time, desc bool) bool {
	if desc {
		return a.After(b)
	}
	return a.Before(b)
}

// отсутствующее значение всегда "больше" любого заданного
func timePtrLess(a, b *time.Time, desc bool) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return timeLess(*a, *b, desc)
}

func intLess(a, b int, desc bool) bool {
	if desc {
		return a > b
	}
	return a < b
}

func stringLess(a, b string, desc bool) bool {
	if desc {
		return strings.Compare(a, b) > 0
	}
	return strings.Compare(a, b) < 0
}
