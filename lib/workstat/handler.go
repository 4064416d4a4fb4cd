package workstat

import (
	"bytes"
	"work-tools-backend/db"
	xlsexport "work-tools-backend/lib/export/xls"
	spaceusersstore "work-tools-backend/lib/space/users/store"
	initchecker "work-tools-backend/lib/utils/init-checker"
	workitemhandler "work-tools-backend/lib/workitem"
	workitemstore "work-tools-backend/lib/workitem/store"
	workitemapimodels "work-tools-backend/models/api/workitem"
	workstatapimodels "work-tools-backend/models/api/workstat"
	dbmodels "work-tools-backend/models/db"
)

type Provider interface {
	Summary(spaceID string, filter workitemapimodels.WorkItemFilter) (workstatapimodels.SummaryView, error)
	CategoryBreakdown(spaceID string, filter workitemapimodels.WorkItemFilter) ([]workstatapimodels.CategoryBreakdownRow, error)
	UserBreakdown(spaceID string, filter workitemapimodels.WorkItemFilter) ([]workstatapimodels.UserBreakdownRow, error)
	MonthlyTrend(spaceID string, year int, filter workitemapimodels.WorkItemFilter) ([]workstatapimodels.MonthlyTrendRow, error)
	SummaryExportToXls(spaceID string, filter workitemapimodels.WorkItemFilter) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"xlsExport", xlsexport.Instance,
	)
	Instance = impl{
		workItemStore:  workitemstore.NewInstance(db.DB),
		spaceUserStore: spaceusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	workItemStore  workitemstore.Provider
	spaceUserStore spaceusersstore.Provider
}

// snapshot - полная выборка поручений пространства, суженная фильтром
func (i impl) snapshot(spaceID string, filter workitemapimodels.WorkItemFilter) ([]dbmodels.WorkItem, error) {
	list, err := i.workItemStore.List(spaceID)
	if err != nil {
		return nil, err
	}
	list = workitemhandler.Filter(list, filter)
	dateFrom, err := filter.GetDateFrom()
	if err != nil {
		return nil, err
	}
	dateTo, err := filter.GetDateTo()
	if err != nil {
		return nil, err
	}
	return workitemhandler.FilterByDateRange(list, dateFrom, dateTo), nil
}

func (i impl) Summary(spaceID string, filter workitemapimodels.WorkItemFilter) (workstatapimodels.SummaryView, error) {
	list, err := i.snapshot(spaceID, filter)
	if err != nil {
		return workstatapimodels.SummaryView{}, err
	}
	return ComputeSummary(list), nil
}

func (i impl) CategoryBreakdown(spaceID string, filter workitemapimodels.WorkItemFilter) ([]workstatapimodels.CategoryBreakdownRow, error) {
	list, err := i.snapshot(spaceID, filter)
	if err != nil {
		return nil, err
	}
	return ComputeCategoryBreakdown(list), nil
}

func (i impl) UserBreakdown(spaceID string, filter workitemapimodels.WorkItemFilter) ([]workstatapimodels.UserBreakdownRow, error) {
	list, err := i.snapshot(spaceID, filter)
	if err != nil {
		return nil, err
	}
	users, err := i.spaceUserStore.GetList(spaceID)
	if err != nil {
		return nil, err
	}
	return ComputeUserBreakdown(list, users), nil
}

func (i impl) MonthlyTrend(spaceID string, year int, filter workitemapimodels.WorkItemFilter) ([]workstatapimodels.MonthlyTrendRow, error) {
	list, err := i.snapshot(spaceID, filter)
	if err != nil {
		return nil, err
	}
	return ComputeMonthlyTrend(list, year), nil
}

func (i impl) SummaryExportToXls(spaceID string, filter workitemapimodels.WorkItemFilter) (*bytes.Buffer, error) {
	list, err := i.snapshot(spaceID, filter)
	if err != nil {
		return nil, err
	}
	users, err := i.spaceUserStore.GetList(spaceID)
	if err != nil {
		return nil, err
	}
	summary := ComputeSummary(list)
	byUser := ComputeUserBreakdown(list, users)
	return xlsexport.Instance.ExportWorkReport(summary, byUser)
}
