package domain

// Company 表示招聘方。Handle 是唯一且不可变的身份键，同时作为外键被引用。
type Company struct {
	Handle   string  `gorm:"primaryKey;size:191" json:"handle"`
	Password string  `gorm:"type:text;not null" json:"-"` // bcrypt 哈希，永不序列化
	Name     string  `gorm:"size:255;not null" json:"name"`
	Logo     *string `gorm:"type:text" json:"logo"`
	Email    string  `gorm:"size:191;uniqueIndex:idx_companies_email;not null" json:"email"`

	// 仅用于声明级联约束，不参与 JSON 输出
	Jobs      []Job  `gorm:"foreignKey:Company;references:Handle;constraint:OnDelete:CASCADE" json:"-"`
	Employees []User `gorm:"foreignKey:CurrentCompany;references:Handle;constraint:OnDelete:SET NULL" json:"-"`
}

// CompanyDetail 是单个公司的详情视图，附带其职位 ID 和在职用户名。
type CompanyDetail struct {
	Company
	JobIDs    []uint   `json:"jobs"`
	Employees []string `json:"users"`
}
