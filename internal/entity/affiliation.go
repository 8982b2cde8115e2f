package entity

type Affiliation struct {
	Base
	Name string `gorm:"unique;not null"`
}
