package models

// Item is a catalog entry used to prefill invoice lines. Invoices copy its
// values; they never reference an item by id.
type Item struct {
	ID           int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name         string  `json:"name" gorm:"not null"`
	HSNCode      string  `json:"hsnCode" gorm:"column:hsn_code;not null"`
	SellingPrice float64 `json:"sellingPrice" gorm:"not null"`
	CostPrice    float64 `json:"costPrice" gorm:"not null"`
	TaxRate      float64 `json:"taxRate" gorm:"not null"`
	Description  string  `json:"description,omitempty"`
}

func (i *Item) SetID(id int) { i.ID = id }

// ItemInput defines the expected JSON structure for creating a catalog item
type ItemInput struct {
	Name         string  `json:"name" binding:"required"`
	HSNCode      string  `json:"hsnCode" binding:"required"`
	SellingPrice *Number `json:"sellingPrice" binding:"required,min=0"`
	CostPrice    *Number `json:"costPrice" binding:"required,min=0"`
	TaxRate      *Number `json:"taxRate" binding:"required,min=0,max=100"`
	Description  string  `json:"description"`
}

// ItemPatch defines the expected JSON structure for updating a catalog item
type ItemPatch struct {
	Name         *string `json:"name" binding:"omitempty,min=1"`
	HSNCode      *string `json:"hsnCode" binding:"omitempty,min=1"`
	SellingPrice *Number `json:"sellingPrice" binding:"omitempty,min=0"`
	CostPrice    *Number `json:"costPrice" binding:"omitempty,min=0"`
	TaxRate      *Number `json:"taxRate" binding:"omitempty,min=0,max=100"`
	Description  *string `json:"description"`
}

func (in ItemInput) ToItem() Item {
	return Item{
		Name:         in.Name,
		HSNCode:      in.HSNCode,
		SellingPrice: numberValue(in.SellingPrice),
		CostPrice:    numberValue(in.CostPrice),
		TaxRate:      numberValue(in.TaxRate),
		Description:  in.Description,
	}
}

func (p ItemPatch) Apply(i *Item) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.HSNCode != nil {
		i.HSNCode = *p.HSNCode
	}
	if p.SellingPrice != nil {
		i.SellingPrice = float64(*p.SellingPrice)
	}
	if p.CostPrice != nil {
		i.CostPrice = float64(*p.CostPrice)
	}
	if p.TaxRate != nil {
		i.TaxRate = float64(*p.TaxRate)
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
}

func numberValue(n *Number) float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}
