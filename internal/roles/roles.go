// Package roles decides which accounts get the admin capability flag. The
// decision runs once, at account creation, and the result is persisted;
// nothing rechecks it per request.
package roles

import "strings"

// Policy answers whether an email belongs to a privileged account. It is
// injected wherever users are created so the matching rule can be swapped
// without touching call sites.
type Policy interface {
	IsPrivileged(email string) bool
}

const adminDomain = "@ascendcohealth.com"

var adminEmails = []string{
	"shyam@ascendcohealth.com",
	"shyam.pathak@ascendcohealth.com",
	"admin@ascendcohealth.com",
}

// DefaultPolicy reproduces the legacy rule: an explicit admin list, plus any
// organization-domain address containing "shyam". The substring match is
// permissive; prefer AllowList for new deployments.
type DefaultPolicy struct{}

func (DefaultPolicy) IsPrivileged(email string) bool {
	if email == "" {
		return false
	}
	lower := strings.ToLower(email)
	for _, admin := range adminEmails {
		if lower == admin {
			return true
		}
	}
	return strings.Contains(lower, "shyam") && strings.HasSuffix(lower, adminDomain)
}

// AllowList grants admin only to exact, case-insensitive matches.
type AllowList struct {
	emails map[string]struct{}
}

func NewAllowList(emails ...string) *AllowList {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		set[strings.ToLower(e)] = struct{}{}
	}
	return &AllowList{emails: set}
}

func (a *AllowList) IsPrivileged(email string) bool {
	_, ok := a.emails[strings.ToLower(email)]
	return ok
}
