package domain

// Role identifies a credential category. The string values are the ones
// embedded in issued tokens under the "rol" claim.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "cliente"
	RoleEmployee Role = "empleado"
)

var roleLabels = map[Role]string{
	RoleAdmin:    "Administrador",
	RoleCustomer: "Cliente",
	RoleEmployee: "Empleado",
}

// Valid reports whether r is one of the known credential categories.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the human-facing category name returned by login as "tipo".
func (r Role) Label() string {
	return roleLabels[r]
}

func (r Role) String() string { return string(r) }
