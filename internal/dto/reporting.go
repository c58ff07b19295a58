package dto

// DetailSortField selects the ordering of the barter detail report.
type DetailSortField string

const (
	SortByDate    DetailSortField = "date"
	SortByIncome  DetailSortField = "income"
	SortByExpense DetailSortField = "expense"
)

// BarterDetailReportParams holds query parameters for the detail report.
type BarterDetailReportParams struct {
	Year   int             `form:"year" binding:"required"`
	SortBy DetailSortField `form:"sortBy"`
}
