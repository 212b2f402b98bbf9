package repository

import "github.com/Xavis19/NuclearVET-sub001/internal/domain/entity"

// UsuarioRepository puerto mínimo para autenticación y referencia de actor.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
