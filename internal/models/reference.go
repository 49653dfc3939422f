package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type Zone struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type Duration struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	Minutes int  `gorm:"uniqueIndex;not null" json:"minutes"`
}
