package permission

//go:generate go run github.com/dmarkham/enumer -type=Permission -transform=snake-upper -json -yaml -output=permission.gen.go

// Permission is a built-in permission name. The string form, FULL_ACCESS,
// READ and so on, is what gets persisted.
type Permission int

const (
	FullAccess Permission = iota

	Read
	Write
	Delete
	Share

	UploadFile
	DownloadFile
	RenameFile
	MoveFile
	CopyFile
	PreviewFile

	CreateFolder
	RenameFolder
	MoveFolder
	DeleteFolder
	ListFolder

	ManagePermissions
	ManageMembers
	ViewAuditLog
	RestoreFromTrash
	EmptyTrash
)

// Category groups permissions for presentation. The grouping carries no
// meaning for ApplyToggle.
type Category struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

var categories = []struct {
	name  string
	perms []Permission
}{
	{"Master", []Permission{FullAccess}},
	{"Basic", []Permission{Read, Write, Delete, Share}},
	{"File-specific", []Permission{UploadFile, DownloadFile, RenameFile, MoveFile, CopyFile, PreviewFile}},
	{"Folder-specific", []Permission{CreateFolder, RenameFolder, MoveFolder, DeleteFolder, ListFolder}},
	{"Administrative", []Permission{ManagePermissions, ManageMembers, ViewAuditLog, RestoreFromTrash, EmptyTrash}},
}

// Categories returns the built-in presentation groups.
func Categories() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		names := make([]string, 0, len(c.perms))
		for _, p := range c.perms {
			names = append(names, p.String())
		}
		out = append(out, Category{Name: c.name, Permissions: names})
	}
	return out
}

// DefaultCatalog returns every built-in permission name in declaration order.
func DefaultCatalog() []string {
	return PermissionStrings()
}

// Extend appends the extra names that are not already in catalog. The input
// is not modified.
func Extend(catalog []string, extra ...string) []string {
	out := make([]string, 0, len(catalog)+len(extra))
	seen := make(map[string]bool, len(catalog)+len(extra))
	for _, name := range append(append([]string{}, catalog...), extra...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// IsBuiltin reports whether name is exactly one of the built-in permission
// names. Matching is case-sensitive.
func IsBuiltin(name string) bool {
	p, err := PermissionString(name)
	return err == nil && p.String() == name
}
