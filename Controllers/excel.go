package Controllers

import (
	"fmt"
	"net/http"

	"MediTrack/Logger"
	"MediTrack/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportPatientsExcel streams the full patient table as an xlsx workbook.
// Admin only, wired behind RequireAdmin.
func ExportPatientsExcel(c *gin.Context) {
	var patients []Models.Patient
	if err := Models.DB.Order("id").Find(&patients).Error; err != nil {
		Logger.Error("export patients failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	headers := map[string]string{
		"A1": "ID",
		"B1": "First Name",
		"C1": "Last Name",
		"D1": "Date of Birth",
		"E1": "Gender",
		"F1": "Address",
		"G1": "Phone Number",
		"H1": "Email",
		"I1": "Active",
	}
	file := excelize.NewFile()
	sheet := "Patients"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := range patients {
		appendPatientRow(sheet, file, i, patients)
	}

	c.Header("Content-Disposition", `attachment; filename="patients.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		Logger.Error("writing xlsx failed:", err)
	}
}

func appendPatientRow(sheet string, file *excelize.File, index int, rows []Models.Patient) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].ID)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].FirstName)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].LastName)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].DateOfBirth)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Gender)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].Address)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].PhoneNumber)
	file.SetCellValue(sheet, fmt.Sprintf("H%v", rowCount), rows[index].Email)
	file.SetCellValue(sheet, fmt.Sprintf("I%v", rowCount), rows[index].IsActive)
}
