package entity

// Role determines visibility scope and permissions for every other entity.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleMedico    Role = "MEDICO"
	RolePaciente  Role = "PACIENTE"
	RoleAtendente Role = "ATENDENTE"
)

// IsValid reports whether r is one of the four enumerated roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMedico, RolePaciente, RoleAtendente:
		return true
	}
	return false
}
