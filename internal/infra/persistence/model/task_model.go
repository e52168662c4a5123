package model

// TaskModel mirrors the 'tasks' table. OwnerEmail references users.email and
// is indexed for owner-scoped listing. No cascade is defined; user deletion
// is out of scope.
type TaskModel struct {
	ID          int64   `gorm:"column:task_id;primaryKey;autoIncrement"`
	OwnerEmail  string  `gorm:"column:user_email;type:varchar(255);not null;index"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Checked     bool    `gorm:"not null;default:false"`
	Date        *string `gorm:"type:varchar(10)"`
	Duration    *int
	Priority    *int
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
