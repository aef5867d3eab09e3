// upkraft-crm/internal/handlers/export_workbook.go
package handlers

import (
	"fmt"

	"upkraft-crm/internal/revenue"

	"github.com/xuri/excelize/v2"
)

// buildRevenueWorkbook собирает книгу Excel: лист со сводкой и лист с платежами периода.
func buildRevenueWorkbook(report revenue.Report, txns []revenue.Transaction, current revenue.Interval) *excelize.File {
	f := excelize.NewFile()

	summarySheet := "Сводка"
	index, _ := f.NewSheet(summarySheet)
	f.SetActiveSheet(index)

	f.SetCellValue(summarySheet, "A1", "Период")
	f.SetCellValue(summarySheet, "B1", report.Label)

	summaryRows := []struct {
		name  string
		value float64
	}{
		{"Общая выручка", report.Current.TotalRevenue},
		{"Собрано", report.Current.CollectedRevenue},
		{"В ожидании", report.Current.PendingRevenue},
		{"Комиссия", report.Current.Commission},
		{"Процент сбора", report.Current.CollectionRate},
	}
	for i, row := range summaryRows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+2), row.name)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+2), row.value)
	}

	txSheet := "Платежи"
	f.NewSheet(txSheet)

	headers := []string{"ID платежа", "Ученик", "Репетитор", "Курс", "Сумма", "Комиссия", "Статус", "Способ оплаты", "Дата"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(txSheet, cell, header)
	}

	rowNum := 2
	for _, tx := range txns {
		paidAt, ok := revenue.ParsePaymentDate(tx.PaymentDate)
		if !ok || !current.Contains(paidAt) {
			continue
		}
		f.SetCellValue(txSheet, fmt.Sprintf("A%d", rowNum), tx.TransactionID)
		f.SetCellValue(txSheet, fmt.Sprintf("B%d", rowNum), tx.StudentName)
		f.SetCellValue(txSheet, fmt.Sprintf("C%d", rowNum), tx.TutorName)
		f.SetCellValue(txSheet, fmt.Sprintf("D%d", rowNum), tx.CourseTitle)
		f.SetCellValue(txSheet, fmt.Sprintf("E%d", rowNum), revenue.Amount(tx))
		f.SetCellValue(txSheet, fmt.Sprintf("F%d", rowNum), revenue.CommissionAmount(tx))
		f.SetCellValue(txSheet, fmt.Sprintf("G%d", rowNum), tx.Status)
		f.SetCellValue(txSheet, fmt.Sprintf("H%d", rowNum), tx.PaymentMethod)
		f.SetCellValue(txSheet, fmt.Sprintf("I%d", rowNum), paidAt.Format("02.01.2006"))
		rowNum++
	}

	// Удаляем созданный по умолчанию пустой лист.
	f.DeleteSheet("Sheet1")
	return f
}
