package entities

// UserProfile is replaced wholesale on edit.
type UserProfile struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func DefaultUserProfile() UserProfile {
	return UserProfile{
		FullName:    "Hieu-Hoc Tran Minh",
		PhoneNumber: "+84348567062",
		Email:       "tranminhhieuhoc@gmail.com",
		Address:     "227 Nguyen Van Cu Street, Cho Quan Ward, Ho Chi Minh City",
	}
}

// Preferences are the user-toggleable flags persisted with the snapshot.
type Preferences struct {
	DarkMode             bool `json:"dark_mode"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

func DefaultPreferences() Preferences {
	return Preferences{DarkMode: false, NotificationsEnabled: true}
}

// Region is a province, district or ward returned by the address lookup.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
