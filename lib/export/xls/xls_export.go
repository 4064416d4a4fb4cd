package xlsexport

import (
	"bytes"
	"fmt"
	"work-tools-backend/models"
	workstatapimodels "work-tools-backend/models/api/workstat"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportWorkReport(summary workstatapimodels.SummaryView, byUser []workstatapimodels.UserBreakdownRow) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var summaryHeaders = []string{"Показатель", "Значение"}
var userHeaders = []string{"Сотрудник", "Всего поручений", "Выполнено", "Новых", "В работе", "% выполнения"}

func (i impl) ExportWorkReport(summary workstatapimodels.SummaryView, byUser []workstatapimodels.UserBreakdownRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, summaryHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	row, err = writeSummaryData(f, sheet, summary, row)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования сводки в xlsx")
	}

	row, err = writeHeader(f, sheet, row+1, userHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка по сотрудникам в xlsx")
	}
	if len(byUser) != 0 {
		_, err = writeUserData(f, sheet, byUser, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы по сотрудникам в xlsx")
		}
	}
	f.SetSheetName(sheet, "Поручения")
	return f.WriteToBuffer()
}

func writeSummaryData(f *excelize.File, sheet string, summary workstatapimodels.SummaryView, row int) (int, error) {
	lines := []struct {
		name  string
		value interface{}
	}{
		{"Всего поручений", summary.Total},
		{"Выполнено", summary.ByStatus[models.WorkItemStatusCompleted]},
		{"Отклонено", summary.ByStatus[models.WorkItemStatusRejected]},
		{"В работе", summary.ByStatus[models.WorkItemStatusInProgress]},
		{"% выполнения", fmt.Sprintf("%d%%", summary.CompletionRate)},
		{"% выполнения в срок", fmt.Sprintf("%d%%", summary.OnTimeRate)},
	}
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(summaryHeaders), row+len(lines)); err != nil {
		return row, err
	}
	for _, line := range lines {
		row++
		if err := writeColumn(f, sheet, 1, row, line.name); err != nil {
			return row, err
		}
		if err := writeColumn(f, sheet, 2, row, line.value); err != nil {
			return row, err
		}
	}
	return row, nil
}

func writeUserData(f *excelize.File, sheet string, list []workstatapimodels.UserBreakdownRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(userHeaders), row+len(list)); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		name := item.UserName
		if name == "" {
			name = item.UserID
		}
		if err := writeColumn(f, sheet, col, row, name); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.TotalAssigned); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.CompletedCount); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.PendingCount); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.InProgressCount); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%d%%", item.CompletionRate)); err != nil {
			return row, err
		}
	}
	return row, nil
}
