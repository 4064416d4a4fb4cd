package workitemapimodels

import (
	"time"
	"work-tools-backend/models"

	"github.com/pkg/errors"
)

// WorkItemFilter - условия объединяются по "И", незаполненные поля не ограничивают выборку.
// AssigneeID может принимать значение models.UnassignedSentinel - поручения без исполнителя.
type WorkItemFilter struct {
	Status     *models.WorkItemStatus   `json:"status"`      // статус
	Priority   *models.WorkItemPriority `json:"priority"`    // приоритет
	Category   *models.WorkItemCategory `json:"category"`    // категория
	AssignerID string                   `json:"assigner_id"` // ид постановщика
	AssigneeID string                   `json:"assignee_id"` // ид исполнителя или "unassigned"
	DateFrom   string                   `json:"date_from"`   // дата создания "с" ДД.ММ.ГГГГ
	DateTo     string                   `json:"date_to"`     // дата создания "по" ДД.ММ.ГГГГ
	Sort       WorkItemSort             `json:"sort"`
}

type WorkItemSort struct {
	Field SortField `json:"field"` // поле сортировки, пусто = без сортировки
	Desc  bool      `json:"desc"`  // false = ASC / true = DESC
}

type SortField string

const (
	SortFieldCreatedAt SortField = "created_at"
	SortFieldDueDate   SortField = "due_date"
	SortFieldStartDate SortField = "start_date"
	SortFieldPriority  SortField = "priority"
	SortFieldStatus    SortField = "status"
	SortFieldTitle     SortField = "title"
	SortFieldCategory  SortField = "category"
)

var sortFields = map[SortField]bool{
	SortFieldCreatedAt: true,
	SortFieldDueDate:   true,
	SortFieldStartDate: true,
	SortFieldPriority:  true,
	SortFieldStatus:    true,
	SortFieldTitle:     true,
	SortFieldCategory:  true,
}

func (f WorkItemFilter) Validate() error {
	if f.Status != nil {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	if f.Priority != nil {
		if err := f.Priority.Validate(); err != nil {
			return err
		}
	}
	if f.Category != nil {
		if err := f.Category.Validate(); err != nil {
			return err
		}
	}
	if _, err := f.GetDateFrom(); err != nil {
		return errors.New("некорректный формат даты создания \"с\"")
	}
	if _, err := f.GetDateTo(); err != nil {
		return errors.New("некорректный формат даты создания \"по\"")
	}
	if f.Sort.Field != "" && !sortFields[f.Sort.Field] {
		return errors.Errorf("некорректное поле сортировки: %v", f.Sort.Field)
	}
	return nil
}

func (f WorkItemFilter) GetDateFrom() (*time.Time, error) {
	return parseFilterDate(f.DateFrom)
}

func (f WorkItemFilter) GetDateTo() (*time.Time, error) {
	return parseFilterDate(f.DateTo)
}

func parseFilterDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
