package pkgControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/usmanrimi/abb-gallery-ease-sub001/models"
	"gorm.io/gorm"
)

// GET /admin/packages/export-excel
func ExportPackagesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		packages, err := fetchAll(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch packages"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Packages")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "CategoryID", "Name", "Description", "HasClasses",
			"StartingPrice", "Hidden", "ClassName", "ClassPrice", "ClassSortOrder", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range packages {
			if len(p.Classes) == 0 {
				addPackageRow(sheet, p, nil)
				continue
			}
			// One row per class, package columns repeated
			for i := range p.Classes {
				addPackageRow(sheet, p, &p.Classes[i])
			}
		}

		c.Header("Content-Disposition", "attachment; filename=packages.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to write Excel file"})
			return
		}
	}
}

func addPackageRow(sheet *xlsx.Sheet, p models.Package, class *models.PackageClass) {
	row := sheet.AddRow()

	row.AddCell().SetValue(p.ID)
	row.AddCell().SetValue(p.CategoryID)
	row.AddCell().SetValue(p.Name)
	row.AddCell().SetValue(p.Description)
	row.AddCell().SetValue(strconv.FormatBool(p.HasClasses))
	row.AddCell().SetValue(p.StartingPrice)
	row.AddCell().SetValue(strconv.FormatBool(p.Hidden))

	if class != nil {
		row.AddCell().SetValue(class.Name)
		row.AddCell().SetValue(class.Price)
		row.AddCell().SetValue(class.SortOrder)
	} else {
		row.AddCell().SetValue("")
		row.AddCell().SetValue("")
		row.AddCell().SetValue("")
	}

	row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
}
