package entity

type Deck struct {
	Base
	Name       string      `gorm:"not null"`
	OwnerID    int64       `gorm:"not null"`
	Owner      User        `gorm:"foreignKey:OwnerID"`
	Characters []Character `gorm:"many2many:deck_characters"`
}
