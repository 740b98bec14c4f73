package models

// DesignSoftware is a static catalog entry for a design tool. Category links
// a designer's tooling to the services they can fulfil.
type DesignSoftware struct {
	BaseModel
	Name     string `gorm:"not null" json:"name"`
	NameAr   string `gorm:"not null" json:"nameAr"`
	Category string `gorm:"type:varchar(50);not null;index" json:"category"` // photo, video, 3d, ui
}

// DesignerSoftware links a designer account to one catalog tool.
type DesignerSoftware struct {
	BaseModel
	DesignerID string `gorm:"not null;index" json:"designerId"`
	SoftwareID string `gorm:"not null;index" json:"softwareId"`

	Software *DesignSoftware `gorm:"foreignKey:SoftwareID" json:"software,omitempty"`
}

type Service struct {
	BaseModel
	Name          string `gorm:"not null" json:"name"`
	NameAr        string `gorm:"not null" json:"nameAr"`
	Description   string `gorm:"type:text;not null" json:"description"`
	DescriptionAr string `gorm:"type:text;not null" json:"descriptionAr"`
	// Price is kept in the smallest currency unit. Never a float.
	Price    int    `gorm:"not null" json:"price"`
	Category string `gorm:"type:varchar(50);not null;index" json:"category"`
	ImageURL string `json:"imageUrl"`
	IsActive bool   `gorm:"default:true;not null" json:"isActive"`
}
