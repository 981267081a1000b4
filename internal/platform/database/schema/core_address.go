package schema

// CoreAddressTable represents the 'core.address' table
type CoreAddressTable struct {
	Table       string
	ID          string
	PersonalID  string
	AddressName string
	Address     string
	City        string
	Province    string
	Country     string
	CreatedAt   string
	UpdatedAt   string
}

// CoreAddress is the schema definition for core.address
var CoreAddress = CoreAddressTable{
	Table:       "core.address",
	ID:          "id",
	PersonalID:  "personalid",
	AddressName: "addressname",
	Address:     "address",
	City:        "city",
	Province:    "province",
	Country:     "country",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

func (t CoreAddressTable) Columns() []string {
	return []string{
		t.ID, t.PersonalID, t.AddressName, t.Address,
		t.City, t.Province, t.Country, t.CreatedAt, t.UpdatedAt,
	}
}
