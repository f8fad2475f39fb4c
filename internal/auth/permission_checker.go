package auth

// ApproverRoles may approve or reject leave and expense requests.
var ApproverRoles = []Role{RoleAdmin, RoleManager}

// HasRole is the single capability check: it reports whether caller is one
// of the allowed roles.
func HasRole(caller Role, allowed ...Role) bool {
	for _, r := range allowed {
		if caller == r {
			return true
		}
	}
	return false
}

func CanApprove(caller Role) bool {
	return HasRole(caller, ApproverRoles...)
}

func (r Role) Valid() bool {
	return HasRole(r, RoleAdmin, RoleManager, RoleEmployee)
}
