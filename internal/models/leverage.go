package models

// Leverage links a provider to one of its data streams. It is shown as one
// row in the leverage list.
type Leverage struct {
	ID         string     `json:"id"`
	Provider   Provider   `json:"provider"`
	DataStream DataStream `json:"dataStream"`
}

// LeverageRecord is the persisted form of a Leverage. Provider display
// metadata is rebuilt from the catalog on load.
type LeverageRecord struct {
	ID             string `gorm:"primaryKey;size:36"`
	Position       int    `gorm:"not null;index"`
	ProviderID     string `gorm:"size:64;not null"`
	DataStreamID   string `gorm:"size:64;not null"`
	DataStreamName string `gorm:"size:255"`
}

func (LeverageRecord) TableName() string {
	return "leverages"
}
