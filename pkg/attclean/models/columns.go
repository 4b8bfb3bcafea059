package models

// RequiredColumns lists the attendance columns recognized in a sheet, in output order.
var RequiredColumns = []string{
	"Date", "ArrTim", "LateHrs", "DepTim", "EarlHrs", "WrkHrs", "OvTim",
	"Present", "Absent", "Paid_Lv", "UnPaidLv", "PrsAbs", "Remarks",
}

const (
	// ColumnEmpCode is the appended employee code column.
	ColumnEmpCode = "Empcode"
	// ColumnEmpName is the appended employee name column.
	ColumnEmpName = "EmpName"
)
