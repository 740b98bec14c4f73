package models

import "time"

// Order is the central entity of the platform. DesignerID stays nil exactly
// while the order is pending; Price is copied from the service at creation
// time and never changes afterwards.
type Order struct {
	BaseModel
	ClientID    string      `gorm:"not null;index" json:"clientId"`
	ServiceID   string      `gorm:"not null;index" json:"serviceId"`
	DesignerID  *string     `gorm:"index" json:"designerId"`
	Status      OrderStatus `gorm:"type:varchar(20);default:'pending';not null;index" json:"status"`
	Price       int         `gorm:"not null" json:"price"`
	Description string      `gorm:"type:text;not null" json:"description"`
	CompletedAt *time.Time  `json:"completedAt"`

	// Relations
	Service      *Service      `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Client       *User         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Designer     *User         `gorm:"foreignKey:DesignerID" json:"designer,omitempty"`
	Files        []OrderFile   `gorm:"foreignKey:OrderID" json:"files,omitempty"`
	Deliverables []Deliverable `gorm:"foreignKey:OrderID" json:"deliverables,omitempty"`
}

// IsParty reports whether userID is the order's client or its assigned designer.
func (o *Order) IsParty(userID string) bool {
	if o.ClientID == userID {
		return true
	}
	return o.DesignerID != nil && *o.DesignerID == userID
}

// Counterpart returns the other party of the order relative to userID.
// Empty when the order has no designer yet or userID is not a party.
func (o *Order) Counterpart(userID string) string {
	switch {
	case o.ClientID == userID && o.DesignerID != nil:
		return *o.DesignerID
	case o.DesignerID != nil && *o.DesignerID == userID:
		return o.ClientID
	}
	return ""
}

// OrderFile is a client-supplied reference attachment.
type OrderFile struct {
	BaseModel
	OrderID    string `gorm:"not null;index" json:"orderId"`
	FileName   string `gorm:"not null" json:"fileName"`
	FileURL    string `gorm:"not null" json:"fileUrl"`
	FileKey    string `gorm:"not null" json:"fileKey"`
	FileType   string `json:"fileType"`
	UploadedBy string `gorm:"not null" json:"uploadedBy"`
}

// Deliverable is designer-authored final work; no uploader column, the
// assigned designer is the only one allowed to submit.
type Deliverable struct {
	BaseModel
	OrderID  string `gorm:"not null;index" json:"orderId"`
	FileName string `gorm:"not null" json:"fileName"`
	FileURL  string `gorm:"not null" json:"fileUrl"`
	FileKey  string `gorm:"not null" json:"fileKey"`
	FileType string `json:"fileType"`
}
