package domain

import "time"

const (
	// SettingZenCostPerDay is the global skip-ahead price per day ahead,
	// admin-configurable, never per-user.
	SettingZenCostPerDay = "zen_cost_per_day"

	DefaultZenCostPerDay int64 = 100000
)

type Setting struct {
	Key       string    `gorm:"column:key;primaryKey" json:"key"`
	Value     int64     `gorm:"column:value;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
