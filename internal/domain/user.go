package domain

// User 表示求职者。Username 是唯一且不可变的身份键。
type User struct {
	Username       string  `gorm:"primaryKey;size:191" json:"username"`
	Password       string  `gorm:"type:text;not null" json:"-"` // 存储的是哈希后的密码
	FirstName      string  `gorm:"size:255;not null" json:"first_name"`
	LastName       string  `gorm:"size:255;not null" json:"last_name"`
	Email          string  `gorm:"size:191;not null" json:"email"`
	Photo          *string `gorm:"type:text" json:"photo"`
	CurrentCompany *string `gorm:"size:191;index" json:"current_company"` // 可空，公司删除后置为 NULL

	Applications []Application `gorm:"foreignKey:Username;references:Username;constraint:OnDelete:CASCADE" json:"-"`
}
