package audit

import (
	"fmt"
	"strconv"
	"strings"
)

// GrantEvent records a permission grant being saved for a member or group
type GrantEvent struct {
	UserID       string
	ClientIP     string
	Organization string
	GrantID      string
	GranteeID    string
	GranteeKind  string
	ResourceType string
	Permissions  []string
	Resources    []string
	Inherit      bool
	Success      bool
	ErrorMessage string
}

func (e GrantEvent) MessageID() string {
	return "grant"
}

func (e GrantEvent) Message() string {
	target := fmt.Sprintf("%s %s on %d %s resource(s)", e.GranteeKind, e.GranteeID, len(e.Resources), e.ResourceType)
	if e.Success {
		return fmt.Sprintf("%s granted %s to %s", e.UserID, strings.Join(e.Permissions, ","), target)
	}
	msg := fmt.Sprintf("%s tried to grant %s to %s", e.UserID, strings.Join(e.Permissions, ","), target)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e GrantEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e GrantEvent) Facility() int {
	return FacilityAuthPriv
}

func (e GrantEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"organization": e.Organization,
			"resources":    strings.Join(e.Resources, ","),
		},
		SDIDGrant: {
			"grantee":       e.GranteeID,
			"grantee_kind":  e.GranteeKind,
			"resource_type": e.ResourceType,
			"permissions":   strings.Join(e.Permissions, ","),
			"inherit":       strconv.FormatBool(e.Inherit),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "grant",
			"result":    result(e.Success),
		},
	}
	if e.GrantID != "" {
		sd[SDIDGrant]["id"] = e.GrantID
	}
	return sd
}

// RevokeEvent records a grant being deleted
type RevokeEvent struct {
	UserID       string
	ClientIP     string
	Organization string
	GrantID      string
	Success      bool
	ErrorMessage string
}

func (e RevokeEvent) MessageID() string {
	return "revoke"
}

func (e RevokeEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s revoked grant %s", e.UserID, e.GrantID)
	}
	msg := fmt.Sprintf("%s tried to revoke grant %s", e.UserID, e.GrantID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RevokeEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e RevokeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RevokeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"organization": e.Organization,
		},
		SDIDGrant: {
			"id": e.GrantID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "revoke",
			"result":    result(e.Success),
		},
	}
}

// RestoreEvent records a trashed resource being restored
type RestoreEvent struct {
	UserID       string
	ClientIP     string
	Organization string
	ResourceID   string
	Success      bool
	ErrorMessage string
}

func (e RestoreEvent) MessageID() string {
	return "restore"
}

func (e RestoreEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s restored %s from trash", e.UserID, e.ResourceID)
	}
	msg := fmt.Sprintf("%s tried to restore %s from trash", e.UserID, e.ResourceID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RestoreEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RestoreEvent) Facility() int {
	return FacilityAuth
}

func (e RestoreEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDSubject: {
			"organization": e.Organization,
			"resource":     e.ResourceID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "restore",
			"result":    result(e.Success),
		},
	}
}
