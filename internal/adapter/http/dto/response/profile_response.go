package response

import "thecodecup/internal/domain/entities"

type ProfileResponse struct {
	FullName    string `json:"full_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	return ProfileResponse(p)
}

type PreferencesResponse struct {
	DarkMode             bool `json:"dark_mode"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

func FromPreferences(p entities.Preferences) PreferencesResponse {
	return PreferencesResponse(p)
}

type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromRegions(rs []entities.Region) []RegionResponse {
	out := make([]RegionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, RegionResponse(r))
	}
	return out
}
