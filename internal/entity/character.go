package entity

import "database/sql"

type Character struct {
	Base
	Name          string `gorm:"unique;not null"`
	AffiliationID sql.NullInt64
	Affiliation   *Affiliation `gorm:"foreignKey:AffiliationID"`
	LifePoints    int
	Size          float64
	Age           int
	Weight        float64
	ImageURL      string
	Decks         []Deck `gorm:"many2many:deck_characters"`
}
