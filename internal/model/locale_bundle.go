package model

// LocaleBundle 数据库中的语言包，Content 为 JSON 对象
type LocaleBundle struct {
	BaseModel
	Locale  string `gorm:"uniqueIndex;size:16;not null" json:"locale"`
	Content string `gorm:"type:mediumtext;not null" json:"-"`
}
