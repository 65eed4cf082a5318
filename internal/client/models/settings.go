package models

// NotificationSettings controls the reminder schedule. Scheduling itself is
// outside the core; the settings object only persists the preferences.
type NotificationSettings struct {
	Morning     bool   `json:"morning"`
	MorningTime string `json:"morningTime"`
	Reminders   bool   `json:"reminders"`
	Insights    bool   `json:"insights"`
}

// QuickAddPreset is a one-tap entry template shown on the dashboard.
type QuickAddPreset struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Unit     string  `json:"unit"`
}

// Settings is the full settings object held in the encrypted "settings"
// singleton store. It is always replaced whole: callers read, modify, write.
type Settings struct {
	Theme                string               `json:"theme"`
	Notifications        bool                 `json:"notifications"`
	Categories           []string             `json:"categories"`
	DashboardLayout      []string             `json:"dashboardLayout"`
	NotificationSettings NotificationSettings `json:"notificationSettings"`
	QuickAddPresets      []QuickAddPreset     `json:"quickAddPresets"`
}

// DefaultSettings returns the settings written at account creation.
func DefaultSettings() Settings {
	return Settings{
		Theme:         "light",
		Notifications: true,
		Categories: []string{
			"water",
			"exercise",
			"nutrition",
			"sleep",
			"mindfulness",
		},
		DashboardLayout: []string{"goals", "quickAdd", "todayProgress"},
		NotificationSettings: NotificationSettings{
			Morning:     true,
			MorningTime: "08:00",
			Reminders:   true,
			Insights:    true,
		},
		QuickAddPresets: []QuickAddPreset{
			{Category: "water", Value: 1, Unit: "glass"},
		},
	}
}
