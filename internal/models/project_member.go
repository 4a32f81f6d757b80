package models

type ProjectRole string

const (
	RoleAdmin  ProjectRole = "Admin"
	RoleMember ProjectRole = "Member"
)

// ValidProjectRole reports whether s is one of the role choices.
func ValidProjectRole(s string) bool {
	switch ProjectRole(s) {
	case RoleAdmin, RoleMember:
		return true
	}
	return false
}

// ProjectMember links a user to a project with a role. There is no
// uniqueness constraint on (project, user); duplicate rows are allowed.
type ProjectMember struct {
	ID        uint64      `gorm:"primarykey" json:"id"`
	ProjectID uint64      `gorm:"not null;index" json:"project"`
	UserID    uint64      `gorm:"not null;index" json:"user"`
	Role      ProjectRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
