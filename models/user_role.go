package models

type UserRole string

const (
	UserRoleEmployee   UserRole = "employee"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleSuperAdmin UserRole = "superadmin"
)

var roleHumanName = map[UserRole]string{
	UserRoleEmployee:   "Employee",
	UserRoleSupervisor: "Supervisor",
	UserRoleSuperAdmin: "Super admin",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsEmployee() bool {
	return r == UserRoleEmployee
}

func (r UserRole) IsSupervisor() bool {
	return r == UserRoleSupervisor
}

func (r UserRole) IsSuperAdmin() bool {
	return r == UserRoleSuperAdmin
}

// CanSubmitEntries: the superadmin manages people and has no entries of its own.
func (r UserRole) CanSubmitEntries() bool {
	return r == UserRoleEmployee || r == UserRoleSupervisor
}

// CanApproveEntries: only the supervisor role passes. The superadmin is
// deliberately excluded from direct approval.
func (r UserRole) CanApproveEntries() bool {
	return r == UserRoleSupervisor
}

func (r UserRole) CanManageTeam() bool {
	return r == UserRoleSupervisor || r == UserRoleSuperAdmin
}

func (r UserRole) CanViewTeamEntries() bool {
	return r == UserRoleSupervisor || r == UserRoleSuperAdmin
}
