// Package audit provides audit logging for permission changes in the drive
// console.
//
// Every grant, revoke and trash restore is written as an RFC5424 syslog
// line to stdout and, when AUDIT_DATABASE_URL is set, inserted into the
// messages table of that database.
//
// # Event Types
//
//   - GrantEvent: permissions saved for a member or security group
//   - RevokeEvent: a saved grant deleted
//   - RestoreEvent: a trashed file or folder restored
//
// # Usage
//
//	audit.Log(audit.RevokeEvent{
//	    UserID:   id.RoleID,
//	    ClientIP: clientIP,
//	    GrantID:  grantID,
//	    Success:  true,
//	})
//
// Set DRIVE_AUDIT_ENABLED=false, or audit_enabled: false in drive.yml, to
// turn auditing off.
package audit
