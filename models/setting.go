package models

const (
	// SettingTypeVAT keeps the type tag used by existing sys_settings rows.
	SettingTypeVAT        = "valvalue"
	SettingTypeFinanceYr  = "financeYr"
	SettingStatusActive   = "active"
	SettingStatusOpen     = "open"
	SettingStatusInactive = "inactive"
	SettingStatusClosed   = "closed"
)

type SystemSetting struct {
	RecID       uint    `gorm:"primaryKey;column:rec_id" json:"recID"`
	Type        string  `gorm:"size:32;not null;index:idx_setting_lookup" json:"type"`
	Value       string  `gorm:"size:191;not null" json:"value"`
	Status      string  `gorm:"size:20;not null;index:idx_setting_lookup" json:"status"`
	SettingFor  string  `gorm:"size:64;not null;default:'';index:idx_setting_lookup" json:"settingFor"`
	Description *string `gorm:"size:255" json:"description,omitempty"`
	AddedBy     string  `gorm:"size:64" json:"addedBy"`
	UpdatedBy   string  `gorm:"size:64" json:"updatedBy"`
}

func (SystemSetting) TableName() string { return "sys_settings" }
