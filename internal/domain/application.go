package domain

import "time"

// Application 表示用户对某个职位的申请。
// 职位或用户被删除时级联删除；同一 (job, user) 只允许一条。
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JobID     uint      `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	Username  string    `gorm:"size:191;not null;uniqueIndex:idx_applications_job_user;index" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
