package workitemapimodels

import (
	"strings"
	"time"
	"work-tools-backend/models"
	dbmodels "work-tools-backend/models/db"

	"github.com/pkg/errors"
)

const dateLayout = "02.01.2006"

type WorkItemData struct {
	Title       string                  `json:"title"`       // название поручения
	Description string                  `json:"description"` // описание
	Priority    models.WorkItemPriority `json:"priority"`    // приоритет
	Category    models.WorkItemCategory `json:"category"`    // категория
	AssigneeID  string                  `json:"assignee_id"` // ид исполнителя, может быть пустым
	StartDate   string                  `json:"start_date"`  // дата начала ДД.ММ.ГГГГ, не обязательна
	DueDate     string                  `json:"due_date"`    // срок исполнения ДД.ММ.ГГГГ
	Attachments []AttachmentData        `json:"attachments"` // метаданные вложений, только при создании
}

type AttachmentData struct {
	OriginalName string `json:"original_name"` // имя файла
	StoredName   string `json:"stored_name"`   // имя объекта в хранилище
	Size         int64  `json:"size"`          // размер в байтах
	ContentType  string `json:"content_type"`  // mime-тип
}

func (v WorkItemData) Validate() error {
	if strings.TrimSpace(v.Title) == "" {
		return errors.New("не указано название поручения")
	}
	if v.DueDate == "" {
		return errors.New("не указан срок исполнения поручения")
	}
	if _, err := time.Parse(dateLayout, v.DueDate); err != nil {
		return errors.New("некорректный формат срока исполнения, ожидается ДД.ММ.ГГГГ")
	}
	if v.StartDate != "" {
		if _, err := time.Parse(dateLayout, v.StartDate); err != nil {
			return errors.New("некорректный формат даты начала, ожидается ДД.ММ.ГГГГ")
		}
	}
	if err := v.Priority.Validate(); err != nil {
		return err
	}
	if err := v.Category.Validate(); err != nil {
		return err
	}
	return nil
}

func (v WorkItemData) GetStartDate() *time.Time {
	return parseDate(v.StartDate)
}

func (v WorkItemData) GetDueDate() *time.Time {
	return parseDate(v.DueDate)
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &date
}

type StatusChangeData struct {
	Status models.WorkItemStatus `json:"status"` // целевой статус
}

type CommentData struct {
	Content string `json:"content"` // текст комментария
}

type WorkItemView struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	Description  string                  `json:"description"`
	Priority     models.WorkItemPriority `json:"priority"`
	PriorityName string                  `json:"priority_name"`
	Category     models.WorkItemCategory `json:"category"`
	CategoryName string                  `json:"category_name"`
	Status       models.WorkItemStatus   `json:"status"`
	StatusName   string                  `json:"status_name"`
	StartDate    *time.Time              `json:"start_date"`
	DueDate      *time.Time              `json:"due_date"`
	AssignerID   string                  `json:"assigner_id"`
	AssignerName string                  `json:"assigner_name"`
	AssigneeID   string                  `json:"assignee_id"`
	AssigneeName string                  `json:"assignee_name"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	Comments     []CommentView           `json:"comments,omitempty"`
	Attachments  []AttachmentView        `json:"attachments,omitempty"`
}

type CommentView struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type AttachmentView struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type"`
}

func WorkItemConvert(rec dbmodels.WorkItem) WorkItemView {
	result := WorkItemView{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		Priority:     rec.Priority,
		PriorityName: rec.Priority.ToHuman(),
		Category:     rec.Category,
		CategoryName: rec.Category.ToHuman(),
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		StartDate:    rec.StartDate,
		DueDate:      rec.DueDate,
		AssignerID:   rec.AssignerID,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.AssignerUser != nil {
		result.AssignerName = rec.AssignerUser.GetFullName()
	}
	if rec.AssigneeID != nil {
		result.AssigneeID = *rec.AssigneeID
	}
	if rec.AssigneeUser != nil {
		result.AssigneeName = rec.AssigneeUser.GetFullName()
	}
	for _, comment := range rec.Comments {
		result.Comments = append(result.Comments, CommentConvert(comment))
	}
	for _, attachment := range rec.Attachments {
		result.Attachments = append(result.Attachments, AttachmentConvert(attachment))
	}
	return result
}

func CommentConvert(rec dbmodels.WorkItemComment) CommentView {
	result := CommentView{
		ID:        rec.ID,
		AuthorID:  rec.AuthorID,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt,
	}
	if rec.AuthorUser != nil {
		result.AuthorName = rec.AuthorUser.GetFullName()
	}
	return result
}

func AttachmentConvert(rec dbmodels.WorkItemAttachment) AttachmentView {
	return AttachmentView{
		ID:           rec.ID,
		OriginalName: rec.OriginalName,
		StoredName:   rec.StoredName,
		Size:         rec.Size,
		ContentType:  rec.ContentType,
	}
}
