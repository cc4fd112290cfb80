package models

import "gorm.io/gorm"

const (
	RoleTeacher = "TEACHER"
	RoleReader  = "READER"
)

type User struct {
	gorm.Model
	Name      string `json:"name" gorm:"default:''"`
	Email     string `json:"email" gorm:"unique;not null"`
	Role      string `json:"role" gorm:"default:'READER'"` // READER or TEACHER
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
