package impl

import (
	"inndoor/config"

	"github.com/google/uuid"
)

// privilegeChecker answers whether an account may run privileged moderation
// operations. Privileged accounts are listed in auth.adminAccountIds; there
// is no staff flag on the account itself.
type privilegeChecker struct {
	admins map[uuid.UUID]struct{}
}

func newPrivilegeChecker(cfg *config.Config) *privilegeChecker {
	admins := make(map[uuid.UUID]struct{})

	if cfg != nil && cfg.Auth != nil {
		for _, raw := range cfg.Auth.AdminAccountIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			admins[id] = struct{}{}
		}
	}

	return &privilegeChecker{admins: admins}
}

// IsPrivileged reports whether the account is a configured admin.
func (p *privilegeChecker) IsPrivileged(accountID uuid.UUID) bool {
	_, ok := p.admins[accountID]

	return ok
}
