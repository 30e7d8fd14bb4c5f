package access

import "fmt"

// Role es el nivel de privilegio de una cuenta. Se modela como tipo propio
// para que el fallback a Employee sea una variante explícita y no un string
// mágico repartido por el código.
type Role string

// Roles válidos del sistema, de mayor a menor privilegio.
const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleEmployee   Role = "Employee"
)

// Action es una capacidad solicitada sobre los clientes.
type Action string

// Acciones conocidas por la matriz de permisos.
const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionAdmin  Action = "admin"
)

// Roles enumera todos los roles declarados (para validación exhaustiva).
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleEmployee}
}

// matrix es la tabla estática rol → capacidades. Un rol ausente o una acción
// desconocida niegan el acceso: la tabla es la única fuente de verdad.
var matrix = map[Role]map[Action]bool{
	RoleSuperAdmin: {ActionView: true, ActionAdd: true, ActionEdit: true, ActionDelete: true, ActionAdmin: true},
	RoleAdmin:      {ActionView: true, ActionAdd: true, ActionEdit: true, ActionDelete: true},
	RoleManager:    {ActionView: true, ActionAdd: true, ActionEdit: true},
	RoleEmployee:   {ActionView: true},
}

// ParseRole normaliza un rol persistido. Cualquier valor desconocido o vacío
// cae al escalón de menor privilegio (Employee): nunca fail-open.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleEmployee:
		return Role(s)
	default:
		return RoleEmployee
	}
}

// Can responde si el rol tiene la capacidad pedida según la matriz estática.
// Acciones fuera de la matriz devuelven siempre false.
func Can(role Role, action Action) bool {
	caps, ok := matrix[ParseRole(string(role))]
	if !ok {
		return false
	}
	return caps[action]
}

// ValidateMatrix comprueba en el arranque que cada rol declarado tiene un
// conjunto de capacidades definido y no vacío. Un fallo aquí aborta el boot.
func ValidateMatrix() error {
	for _, r := range Roles() {
		caps, ok := matrix[r]
		if !ok || caps == nil {
			return fmt.Errorf("access: rol %q sin conjunto de capacidades", r)
		}
		if len(caps) == 0 {
			return fmt.Errorf("access: rol %q con conjunto de capacidades vacío", r)
		}
	}
	return nil
}

// Scope describe el alcance de tenant de una consulta sobre clientes.
// All=true (solo SuperAdmin) opera sobre toda la colección; en caso contrario
// el filtro queda fijado a Company.
type Scope struct {
	All     bool
	Company string
}

// ScopeForRole construye el alcance para un rol y la empresa del llamador.
func ScopeForRole(role Role, company string) Scope {
	if ParseRole(string(role)) == RoleSuperAdmin {
		return Scope{All: true}
	}
	return Scope{Company: company}
}
