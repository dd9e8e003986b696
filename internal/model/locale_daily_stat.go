package model

type LocaleDailyStat struct {
	BaseModel
	Locale string `gorm:"uniqueIndex:idx_locale_date;size:16;not null" json:"locale"`
	Date   string `gorm:"uniqueIndex:idx_locale_date;size:10;not null" json:"date"` // YYYY-MM-DD
	Views  int64  `gorm:"default:0" json:"views"`
}
