package handler

import "github.com/taller/store-api/internal/core/domain"

type registerRequest struct {
	Name     string `json:"nombre"     validate:"required,min=3,max=100"`
	Email    string `json:"correo"     validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=6,max=100"`
	Phone    string `json:"telefono"   validate:"required,min=7,max=15"`
	Address  string `json:"direccion"  validate:"required,min=5,max=200"`
}

type loginRequest struct {
	Email    string `json:"correo"     validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=6"`
}

type registerResponse struct {
	Message  string           `json:"message"`
	Customer *domain.Customer `json:"cliente"`
}

type loginResponse struct {
	Message string `json:"message"`
	Type    string `json:"tipo"`
	Token   string `json:"token"`
}
