package catalog

// Status is a named order state, created on demand (get-or-create).
// New orders start in StatusPending.
type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;size:50;not null;uniqueIndex" json:"name"`
}

func (Status) TableName() string { return "status" }

const StatusPending = "Pending"
