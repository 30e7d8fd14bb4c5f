package dto

import "time"

// UserResponse perfil de usuario. Password nunca se serializa.
type UserResponse struct {
	Name      string    `json:"Name"`
	Email     string    `json:"Email"`
	Company   string    `json:"Company"`
	Role      string    `json:"Role"`
	DarkMode  bool      `json:"DarkMode"`
	CreatedAt time.Time `json:"createdAt"`
}

// DarkModeRequest preferencia de tema del usuario.
type DarkModeRequest struct {
	DarkMode bool `json:"DarkMode"`
}
