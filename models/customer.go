package models

// Customer is a billable party. Invoices reference it by id only.
type Customer struct {
	ID      int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Phone   string `json:"phone" gorm:"not null"`
	Address string `json:"address" gorm:"type:text;not null"`
}

func (c *Customer) SetID(id int) { c.ID = id }

// CustomerInput defines the expected JSON structure for creating a customer
type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// CustomerPatch defines the expected JSON structure for updating a customer
type CustomerPatch struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone" binding:"omitempty,min=1"`
	Address *string `json:"address" binding:"omitempty,min=1"`
}

func (in CustomerInput) ToCustomer() Customer {
	return Customer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
}

// Apply merges the provided fields over c.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
}
