package domain

// Job 是公司发布的职位，随公司一起级联删除。
type Job struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Title   string  `gorm:"size:255;not null" json:"title"`
	Salary  int     `gorm:"not null" json:"salary"`
	Equity  float64 `gorm:"not null;default:0" json:"equity"`
	Company string  `gorm:"size:191;not null;index" json:"company"` // 所属公司 handle

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
