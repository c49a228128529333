package models

// Customer is constructed fresh for every booking. There is no customer
// table and no dedup; the fields are embedded into the booking row, which
// is also why name lookup is the only way to find a booking again.
type Customer struct {
	FullName string `json:"fullName" gorm:"column:customer_name;type:varchar(255)"`
	Contact  string `json:"contact" gorm:"column:contact;type:varchar(20)"`
	Address  string `json:"address" gorm:"column:address;type:varchar(255)"`
	Email    string `json:"email" gorm:"column:email;type:varchar(255)"`
}
