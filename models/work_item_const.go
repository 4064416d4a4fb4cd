package models

import "github.com/pkg/errors"

type WorkItemStatus string

const (
	WorkItemStatusPending    WorkItemStatus = "pending"
	WorkItemStatusAccepted   WorkItemStatus = "accepted"
	WorkItemStatusInProgress WorkItemStatus = "in_progress"
	WorkItemStatusCompleted  WorkItemStatus = "completed"
	WorkItemStatusRejected   WorkItemStatus = "rejected"
)

var workItemStatusHumanName = map[WorkItemStatus]string{
	WorkItemStatusPending:    "Новое",
	WorkItemStatusAccepted:   "Принято",
	WorkItemStatusInProgress: "В работе",
	WorkItemStatusCompleted:  "Выполнено",
	WorkItemStatusRejected:   "Отклонено",
}

func (s WorkItemStatus) ToHuman() string {
	if human, exist := workItemStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s WorkItemStatus) Validate() error {
	if _, exist := workItemStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус поручения: %v", s)
	}
	return nil
}

// IsTerminal - у статуса нет исходящих переходов
func (s WorkItemStatus) IsTerminal() bool {
	return s == WorkItemStatusCompleted || s == WorkItemStatusRejected
}

type WorkItemPriority string

const (
	WorkItemPriorityLow    WorkItemPriority = "low"
	WorkItemPriorityNormal WorkItemPriority = "normal"
	WorkItemPriorityHigh   WorkItemPriority = "high"
	WorkItemPriorityUrgent WorkItemPriority = "urgent"
)

var workItemPriorityHumanName = map[WorkItemPriority]string{
	WorkItemPriorityLow:    "Низкий",
	WorkItemPriorityNormal: "Обычный",
	WorkItemPriorityHigh:   "Высокий",
	WorkItemPriorityUrgent: "Срочный",
}

var workItemPriorityRank = map[WorkItemPriority]int{
	WorkItemPriorityLow:    1,
	WorkItemPriorityNormal: 2,
	WorkItemPriorityHigh:   3,
	WorkItemPriorityUrgent: 4,
}

func (p WorkItemPriority) ToHuman() string {
	if human, exist := workItemPriorityHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p WorkItemPriority) Validate() error {
	if _, exist := workItemPriorityHumanName[p]; !exist {
		return errors.Errorf("неизвестный приоритет поручения: %v", p)
	}
	return nil
}

// Rank - порядок для сортировки, 0 для неизвестного значения
func (p WorkItemPriority) Rank() int {
	return workItemPriorityRank[p]
}

type WorkItemCategory string

const (
	WorkItemCategoryGeneral  WorkItemCategory = "general"
	WorkItemCategoryProject  WorkItemCategory = "project"
	WorkItemCategoryMeeting  WorkItemCategory = "meeting"
	WorkItemCategoryReport   WorkItemCategory = "report"
	WorkItemCategoryPlanning WorkItemCategory = "planning"
	WorkItemCategoryReview   WorkItemCategory = "review"
)

// WorkItemCategories - полный список категорий в порядке вывода
var WorkItemCategories = []WorkItemCategory{
	WorkItemCategoryGeneral,
	WorkItemCategoryProject,
	WorkItemCategoryMeeting,
	WorkItemCategoryReport,
	WorkItemCategoryPlanning,
	WorkItemCategoryReview,
}

var workItemCategoryHumanName = map[WorkItemCategory]string{
	WorkItemCategoryGeneral:  "Общее",
	WorkItemCategoryProject:  "Проект",
	WorkItemCategoryMeeting:  "Встреча",
	WorkItemCategoryReport:   "Отчет",
	WorkItemCategoryPlanning: "Планирование",
	WorkItemCategoryReview:   "Проверка",
}

func (c WorkItemCategory) ToHuman() string {
	if human, exist := workItemCategoryHumanName[c]; exist {
		return human
	}
	return string(c)
}

func (c WorkItemCategory) Validate() error {
	if _, exist := workItemCategoryHumanName[c]; !exist {
		return errors.Errorf("неизвестная категория поручения: %v", c)
	}
	return nil
}

// UnassignedSentinel - зарезервированное значение фильтра по исполнителю,
// выбирает поручения без назначенного исполнителя
const UnassignedSentinel = "unassigned"
