package models

import "gorm.io/gorm"

// User is a staff account for the admin surface (menu management, reports).
type User struct {
	gorm.Model
	Fullname string `json:"fullname"`
	Username string `json:"username" gorm:"uniqueIndex;size:100"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
