package entity

import "time"

// User representa una cuenta del sistema. El Email es la clave única;
// Company es la partición de tenant que limita qué clientes puede ver.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string // comparación en texto plano, compatibilidad con la base existente
	Company   string
	Role      string // "SuperAdmin" | "Admin" | "Manager" | "Employee"
	DarkMode  bool
	CreatedAt time.Time
}
