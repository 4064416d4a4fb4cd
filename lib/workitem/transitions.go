package workitemhandler

import (
	"work-tools-backend/models"
	dbmodels "work-tools-backend/models/db"
)

// transitionRole - кто вправе выполнить переход по ребру
type transitionRole int

const (
	roleAssignee transitionRole = iota
)

type transitionEdge struct {
	from models.WorkItemStatus
	to   models.WorkItemStatus
	role transitionRole
}

// transitionTable - полный перечень допустимых переходов.
// Постановщик не имеет переходов, его операции - создание/изменение/удаление.
var transitionTable = []transitionEdge{
	{from: models.WorkItemStatusPending, to: models.WorkItemStatusAccepted, role: roleAssignee},
	{from: models.WorkItemStatusPending, to: models.WorkItemStatusRejected, role: roleAssignee},
	{from: models.WorkItemStatusAccepted, to: models.WorkItemStatusInProgress, role: roleAssignee},
	{from: models.WorkItemStatusInProgress, to: models.WorkItemStatusCompleted, role: roleAssignee},
}

func findEdge(from, to models.WorkItemStatus) *transitionEdge {
	for _, edge := range transitionTable {
		if edge.from == from && edge.to == to {
			return &edge
		}
	}
	return nil
}

// checkTransition проверяет допустимость перехода и права актора.
// Порядок проверок: сначала достижимость ребра, затем права.
func checkTransition(rec dbmodels.WorkItem, actorID string, target models.WorkItemStatus) error {
	edge := findEdge(rec.Status, target)
	if edge == nil {
		return ErrInvalidTransition
	}
	switch edge.role {
	case roleAssignee:
		if rec.AssigneeID == nil || *rec.AssigneeID != actorID {
			return ErrForbidden
		}
	}
	return nil
}
