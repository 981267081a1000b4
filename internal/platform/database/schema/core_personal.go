package schema

// CorePersonalTable represents the 'core.personal' table
type CorePersonalTable struct {
	Table     string
	ID        string
	UserID    string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// CorePersonal is the schema definition for core.personal
var CorePersonal = CorePersonalTable{
	Table:     "core.personal",
	ID:        "id",
	UserID:    "userid",
	Name:      "name",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CorePersonalTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Name, t.CreatedAt, t.UpdatedAt}
}
