package handler

import "github.com/taller/store-api/internal/core/ports"

// --- Administrador ---

type createAdminRequest struct {
	Name     string `json:"adm_nombre"     validate:"required,min=3,max=100"`
	Username string `json:"adm_usuario"    validate:"required,min=4,max=50,username"`
	Password string `json:"adm_contrasena" validate:"required,min=6,max=100,strongpwd"`
	Email    string `json:"adm_correo"     validate:"required,email"`
	Active   *bool  `json:"adm_activo"`
}

type updateAdminRequest struct {
	Name     *string `json:"adm_nombre"     validate:"omitempty,min=3,max=100"`
	Username *string `json:"adm_usuario"    validate:"omitempty,min=4,max=50,username"`
	Password *string `json:"adm_contrasena" validate:"omitempty,min=6,max=100,strongpwd"`
	Email    *string `json:"adm_correo"     validate:"omitempty,email"`
	Active   *bool   `json:"adm_activo"`
}

func (r createAdminRequest) toInput() ports.CreateAdminInput {
	return ports.CreateAdminInput{Name: r.Name, Username: r.Username, Email: r.Email, Password: r.Password, Active: r.Active}
}

func (r updateAdminRequest) toInput() ports.UpdateAdminInput {
	return ports.UpdateAdminInput{Name: r.Name, Username: r.Username, Email: r.Email, Password: r.Password, Active: r.Active}
}

// --- Cliente ---

type createCustomerRequest struct {
	Name     string `json:"cli_nombre"     validate:"required,min=3,max=100"`
	Email    string `json:"cli_correo"     validate:"required,email"`
	Phone    string `json:"cli_telefono"   validate:"required,min=7,max=15"`
	Address  string `json:"cli_direccion"  validate:"required,min=5,max=200"`
	Password string `json:"cli_contrasena" validate:"omitempty,min=6,max=100"`
	Active   *bool  `json:"cli_activo"`
}

type updateCustomerRequest struct {
	Name     *string `json:"cli_nombre"     validate:"omitempty,min=3,max=100"`
	Email    *string `json:"cli_correo"     validate:"omitempty,email"`
	Phone    *string `json:"cli_telefono"   validate:"omitempty,min=7,max=15"`
	Address  *string `json:"cli_direccion"  validate:"omitempty,min=5,max=200"`
	Password *string `json:"cli_contrasena" validate:"omitempty,min=6,max=100"`
	Active   *bool   `json:"cli_activo"`
}

func (r createCustomerRequest) toInput() ports.CreateCustomerInput {
	return ports.CreateCustomerInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Password: r.Password,
		Active:   r.Active,
	}
}

func (r updateCustomerRequest) toInput() ports.UpdateCustomerInput {
	return ports.UpdateCustomerInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Password: r.Password,
		Active:   r.Active,
	}
}

// --- Empleado ---

type createEmployeeRequest struct {
	Name     string `json:"emp_nombre"     validate:"required,min=3,max=100"`
	Email    string `json:"emp_email"      validate:"required,email"`
	Password string `json:"emp_contrasena" validate:"required,min=6"`
	Position string `json:"emp_cargo"      validate:"required,min=3,max=50"`
	Active   *bool  `json:"emp_activo"`
	StoreID  *int64 `json:"tienda_id"      validate:"omitempty,gt=0"`
}

type updateEmployeeRequest struct {
	Name     *string `json:"emp_nombre"     validate:"omitempty,min=3,max=100"`
	Email    *string `json:"emp_email"      validate:"omitempty,email"`
	Password *string `json:"emp_contrasena" validate:"omitempty,min=6"`
	Position *string `json:"emp_cargo"      validate:"omitempty,min=3,max=50"`
	Active   *bool   `json:"emp_activo"`
	StoreID  *int64  `json:"tienda_id"      validate:"omitempty,gt=0"`
}

func (r createEmployeeRequest) toInput() ports.CreateEmployeeInput {
	return ports.CreateEmployeeInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Position: r.Position,
		Active:   r.Active,
		StoreID:  r.StoreID,
	}
}

func (r updateEmployeeRequest) toInput() ports.UpdateEmployeeInput {
	return ports.UpdateEmployeeInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Position: r.Position,
		Active:   r.Active,
		StoreID:  r.StoreID,
	}
}
