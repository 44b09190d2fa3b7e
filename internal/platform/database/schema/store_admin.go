package schema

// StoreAdminTable represents the 'store.admin' table
//
// Privilege rows are keyed by identity email. A missing row means not admin;
// so does isadmin = false, which is how an admin is revoked without losing
// the audit trail of the row itself.
type StoreAdminTable struct {
	Table     string
	Email     string
	IsAdmin   string
	GrantedBy string
	CreatedAt string
}

// StoreAdmin is the schema definition for store.admin
var StoreAdmin = StoreAdminTable{
	Table:     "store.admin",
	Email:     "email",
	IsAdmin:   "isadmin",
	GrantedBy: "grantedby",
	CreatedAt: "createdat",
}
