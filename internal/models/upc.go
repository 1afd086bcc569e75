package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductIDType classifies a pooled identifier code by length
type ProductIDType string

const (
	ProductIDTypeUPC  ProductIDType = "UPC"
	ProductIDTypeEAN  ProductIDType = "EAN"
	ProductIDTypeGTIN ProductIDType = "GTIN"
)

// ClassifyCode maps a code length to its identifier type. Codes outside
// the known lengths fall back to GTIN.
func ClassifyCode(code string) ProductIDType {
	switch len(code) {
	case 12:
		return ProductIDTypeUPC
	case 13:
		return ProductIDTypeEAN
	default:
		return ProductIDTypeGTIN
	}
}

// ProductIdentifier is a claimed pool code with its classification
type ProductIdentifier struct {
	ProductIDType ProductIDType `json:"productIdType"`
	ProductID     string        `json:"productId"`
}

// PoolCode is one identifier code in the shared pool. A code is claimed
// by at most one (sku, shop_scope) pair at any time.
type PoolCode struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ShopScope  string    `gorm:"type:varchar(255);not null;index:idx_pool_codes_scope" json:"shopScope"`
	Code       string    `gorm:"type:varchar(14);not null;uniqueIndex:idx_pool_codes_scope_code" json:"code"`
	CodeLength int       `gorm:"not null" json:"codeLength"`

	// Assignment; empty AssignedSKU means the code is still available
	AssignedSKU string     `gorm:"type:varchar(255);index:idx_pool_codes_assigned" json:"assignedSku,omitempty"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// TableName specifies the table name for PoolCode
func (PoolCode) TableName() string {
	return "upc_pool_codes"
}

// Identifier returns the claimed code with its type classification
func (p *PoolCode) Identifier() *ProductIdentifier {
	return &ProductIdentifier{
		ProductIDType: ClassifyCode(p.Code),
		ProductID:     p.Code,
	}
}

// PoolStats summarizes pool usage for one shop scope
type PoolStats struct {
	ShopScope string `json:"shopScope"`
	Available int64  `json:"available"`
	Assigned  int64  `json:"assigned"`
}
