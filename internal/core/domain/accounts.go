package domain

// Admin is an administrator account. Administrators are provisioned by other
// administrators; there is no self-registration path.
type Admin struct {
	ID       int64  `json:"adm_id"`
	Name     string `json:"adm_nombre"`
	Username string `json:"adm_usuario"`
	Email    string `json:"adm_correo"`
	Active   bool   `json:"adm_activo"`
}

// Customer is a customer account, created through registration or by any
// authenticated user.
type Customer struct {
	ID      int64  `json:"cli_id"`
	Name    string `json:"cli_nombre"`
	Email   string `json:"cli_correo"`
	Phone   string `json:"cli_telefono"`
	Address string `json:"cli_direccion"`
	Active  bool   `json:"cli_activo"`
}

// Employee is a store employee account. StoreID is nil when the employee is
// not assigned to a store (or the store was deleted).
type Employee struct {
	ID       int64  `json:"emp_id"`
	Name     string `json:"emp_nombre"`
	Email    string `json:"emp_email"`
	Position string `json:"emp_cargo"`
	Active   bool   `json:"emp_activo"`
	StoreID  *int64 `json:"tienda_id"`
}
