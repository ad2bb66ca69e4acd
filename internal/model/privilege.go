package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "menu:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Menu Item"
}

const (
	PrivMenuView      = "menu:view"
	PrivMenuCreate    = "menu:create"
	PrivMenuUpdate    = "menu:update"
	PrivMenuDelete    = "menu:delete"
	PrivSyncView      = "sync:view"
	PrivSyncTrigger   = "sync:trigger"
	PrivContentUpdate = "content:update"
	PrivDashboardView = "dashboard:view"
	PrivUserView      = "user:view"
)

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// Menu management
	{Code: PrivMenuView, Name: "View Menu"},
	{Code: PrivMenuCreate, Name: "Create Menu Item"},
	{Code: PrivMenuUpdate, Name: "Update Menu Item"},
	{Code: PrivMenuDelete, Name: "Delete Menu Item"},
	// Spreadsheet sync
	{Code: PrivSyncView, Name: "View Sync Status"},
	{Code: PrivSyncTrigger, Name: "Trigger Sync / Export"},
	// Website content
	{Code: PrivContentUpdate, Name: "Update Website Content"},
	// Dashboard
	{Code: PrivDashboardView, Name: "View Dashboard"},
	{Code: PrivUserView, Name: "View User"},
}
