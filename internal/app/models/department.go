package models

// Department represents a department row. Departments are created at seed
// time only; the HTTP surface exposes them read-only.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
