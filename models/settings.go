package models

// SettingsID is the fixed id of the singleton settings row.
const SettingsID = 1

// Settings is the company profile printed on every invoice.
type Settings struct {
	ID             int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CompanyName    string  `json:"companyName" gorm:"not null"`
	CompanyAddress string  `json:"companyAddress" gorm:"type:text;not null"`
	CompanyPhone   string  `json:"companyPhone" gorm:"not null"`
	CompanyEmail   string  `json:"companyEmail" gorm:"not null"`
	LogoURL        string  `json:"logoUrl,omitempty" gorm:"column:logo_url;type:text"`
	TaxPercentage  float64 `json:"taxPercentage"`
}

// SettingsInput defines the expected JSON structure for saving settings.
// Any id sent by the client is ignored.
type SettingsInput struct {
	CompanyName    string  `json:"companyName" binding:"required"`
	CompanyAddress string  `json:"companyAddress" binding:"required"`
	CompanyPhone   string  `json:"companyPhone" binding:"required"`
	CompanyEmail   string  `json:"companyEmail" binding:"required,email"`
	LogoURL        string  `json:"logoUrl"`
	TaxPercentage  *Number `json:"taxPercentage" binding:"required,min=0,max=100"`
}

func (in SettingsInput) ToSettings() Settings {
	return Settings{
		ID:             SettingsID,
		CompanyName:    in.CompanyName,
		CompanyAddress: in.CompanyAddress,
		CompanyPhone:   in.CompanyPhone,
		CompanyEmail:   in.CompanyEmail,
		LogoURL:        in.LogoURL,
		TaxPercentage:  numberValue(in.TaxPercentage),
	}
}

// DefaultSettings is used when no settings row exists yet.
func DefaultSettings() Settings {
	return Settings{
		ID:             SettingsID,
		CompanyName:    "My Billing Company",
		CompanyAddress: "789 Freelance Lane, Digital Nomad City",
		CompanyPhone:   "555-9999",
		CompanyEmail:   "hello@mybilling.com",
		TaxPercentage:  10,
	}
}

func (Settings) TableName() string { return "settings" }
